package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEmptyCommit is returned when the resolver produced no commit identifier.
var ErrEmptyCommit = errors.New("empty commit identifier")

// CommitResolver resolves the current revision of a working directory.
type CommitResolver interface {
	ResolveHead(ctx context.Context) (string, error)
}

// Kind names a resolver implementation selectable from the CLI.
type Kind string

const (
	KindExec Kind = "exec"
	KindRepo Kind = "repo"
)

// NewResolver returns the resolver for kind operating on dir.
func NewResolver(kind Kind, dir string) (CommitResolver, error) {
	switch kind {
	case KindExec, "":
		return NewExecResolver(dir), nil
	case KindRepo:
		return NewRepoResolver(dir), nil
	default:
		return nil, fmt.Errorf("unknown commit resolver %q", kind)
	}
}

// normalizeCommit trims raw resolver output and checks it is usable as a
// commit identifier.
func normalizeCommit(raw []byte) (string, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "", ErrEmptyCommit
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return "", fmt.Errorf("commit identifier is not ASCII (byte 0x%x at offset %d)", s[i], i)
		}
	}
	return s, nil
}
