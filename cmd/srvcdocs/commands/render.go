package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/insilica/srvcdocs/internal/config"
	derrors "github.com/insilica/srvcdocs/internal/errors"
	"github.com/insilica/srvcdocs/internal/logfields"
	"github.com/insilica/srvcdocs/internal/metrics"
	"github.com/insilica/srvcdocs/internal/sphinx"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Format string `short:"f" help:"Output format: python, json or yaml (overrides output.format)"`
	Output string `short:"o" help:"Write to this file instead of stdout (overrides output.path)"`

	stdout io.Writer
}

func (r *RenderCmd) Run(_ *Global, root *CLI) error {
	s, err := root.newSession()
	if err != nil {
		return err
	}
	defer s.flushMetrics()

	format, output, err := resolveTarget(s.cfg, r.Format, r.Output)
	if err != nil {
		return err
	}
	return renderOnce(context.Background(), s, format, output, r.writer())
}

func (r *RenderCmd) writer() io.Writer {
	if r.stdout != nil {
		return r.stdout
	}
	return os.Stdout
}

// resolveTarget applies flag > config > default precedence to the output format and path.
func resolveTarget(cfg *config.Config, format, output string) (string, string, error) {
	if format == "" {
		format = cfg.Output.Format
	}
	if format == "" {
		format = config.FormatPython
	}
	probe := *cfg
	probe.Output.Format = format
	if err := config.Validate(&probe); err != nil {
		return "", "", err
	}

	if output == "" {
		output = cfg.Output.Path
	}
	return format, output, nil
}

// renderOnce emits the settings and writes them to output, or to stdout when
// output is empty. Files are replaced atomically so a concurrent docs build
// never reads a partial conf.py.
func renderOnce(ctx context.Context, s *session, format, output string, stdout io.Writer) (err error) {
	rec := s.recorder()
	defer func() {
		if err != nil {
			rec.IncRender(format, metrics.OutcomeFailed)
		} else {
			rec.IncRender(format, metrics.OutcomeSuccess)
		}
	}()

	settings, err := s.emit(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := sphinx.Render(&buf, settings, format); err != nil {
		return err
	}

	if output == "" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return derrors.WriteFailed("stdout", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return derrors.WriteFailed(output, err)
	}
	if err := renameio.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return derrors.WriteFailed(output, err)
	}
	slog.Info("Wrote documentation configuration",
		logfields.Path(output),
		logfields.Format(format),
		logfields.Commit(settings.Commit))
	return nil
}
