package git

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	shell "github.com/codeskyblue/go-sh"
)

// ExecResolver runs `git rev-parse HEAD` in Dir. It requires a git binary on
// PATH (or Binary set explicitly).
type ExecResolver struct {
	Dir    string
	Binary string
}

// NewExecResolver creates an ExecResolver for dir using the git binary on PATH.
func NewExecResolver(dir string) *ExecResolver {
	return &ExecResolver{Dir: dir, Binary: "git"}
}

func (r *ExecResolver) ResolveHead(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var stderr bytes.Buffer
	sh := shell.NewSession()
	sh.Stderr = &stderr
	if r.Dir != "" {
		sh.SetDir(r.Dir)
	}

	out, err := sh.Command(r.binary(), "rev-parse", "HEAD").Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s rev-parse HEAD: %w: %s", r.binary(), err, msg)
		}
		return "", fmt.Errorf("%s rev-parse HEAD: %w", r.binary(), err)
	}
	return normalizeCommit(out)
}

func (r *ExecResolver) binary() string {
	if r.Binary == "" {
		return "git"
	}
	return r.Binary
}
