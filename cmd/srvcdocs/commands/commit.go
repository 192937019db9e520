package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	derrors "github.com/insilica/srvcdocs/internal/errors"
	"github.com/insilica/srvcdocs/internal/git"
)

// CommitCmd implements the 'commit' command. It needs neither the config
// file nor the environment, only the repository.
type CommitCmd struct {
	stdout io.Writer
}

func (c *CommitCmd) Run(_ *Global, root *CLI) error {
	resolver, err := git.NewResolver(git.Kind(root.Resolver), root.Dir)
	if err != nil {
		return err
	}

	commit, err := resolver.ResolveHead(context.Background())
	if err != nil {
		return derrors.CommitUnresolved(root.Dir, err)
	}

	out := c.stdout
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintln(out, commit)
	return err
}
