package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/insilica/srvcdocs/cmd/srvcdocs/commands"
	derrors "github.com/insilica/srvcdocs/internal/errors"
	"github.com/insilica/srvcdocs/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("srvcdocs"),
		kong.Description("Generate the Sphinx configuration for the SRVC documentation build."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	err := parser.Run(&commands.Global{Logger: slog.Default()}, cli)
	os.Exit(derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).Handle(err))
}
