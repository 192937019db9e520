package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/insilica/srvcdocs/internal/config"
	"github.com/insilica/srvcdocs/internal/versioning"
)

// VersionsCmd implements the 'versions' command. It only reads the
// environment, so it works outside a repository.
type VersionsCmd struct {
	JSON bool `help:"Print as JSON"`

	stdout io.Writer
}

type versionsOutput struct {
	Current  string             `json:"current_version"`
	Versions []versioning.Entry `json:"versions"`
}

func (v *VersionsCmd) Run(_ *Global, root *CLI) error {
	if _, err := config.LoadDotEnv(root.Dir); err != nil {
		return err
	}
	env, err := config.ParseEnvironment(nil)
	if err != nil {
		return err
	}

	res := versionsOutput{
		Current:  versioning.CurrentVersion(env.CurrentVersion, env.CurrentVersionSet),
		Versions: versioning.BuildSwitcher(env.StableVersion),
	}

	out := v.stdout
	if out == nil {
		out = os.Stdout
	}
	if v.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, e := range res.Versions {
		marker := " "
		if e.Label == res.Current {
			marker = "*"
		}
		if _, err := fmt.Fprintf(out, "%s %-10s %s\n", marker, e.Label, e.Path); err != nil {
			return err
		}
	}
	return nil
}
