package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/insilica/srvcdocs/internal/config"
	derrors "github.com/insilica/srvcdocs/internal/errors"
	"github.com/insilica/srvcdocs/internal/git"
	"github.com/insilica/srvcdocs/internal/logfields"
	"github.com/insilica/srvcdocs/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Format   string        `short:"f" help:"Output format: python, json or yaml (overrides output.format)"`
	Output   string        `short:"o" help:"File to keep up to date (overrides output.path)"`
	Debounce time.Duration `help:"Quiet period before re-rendering" default:"500ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, root)
}

// run renders once, then re-renders on every change until ctx is done.
func (w *WatchCmd) run(ctx context.Context, root *CLI) error {
	s, err := root.newSession()
	if err != nil {
		return err
	}

	format, output, err := resolveTarget(s.cfg, w.Format, w.Output)
	if err != nil {
		return err
	}
	if output == "" {
		return derrors.ValidationFailed("output", "watch needs --output or output.path")
	}

	gitDir, err := git.GitDir(root.Dir)
	if err != nil {
		return derrors.CommitUnresolved(root.Dir, err)
	}

	rerender := func(ctx context.Context) error {
		// Reload so edits to the config file take effect.
		cfg, err := root.LoadConfig()
		if err != nil {
			return err
		}
		next := *s
		next.cfg = cfg
		next.emitter = s.emitter.WithConfig(cfg)
		defer next.flushMetrics()
		return renderOnce(ctx, &next, format, output, nil)
	}

	if err := renderOnce(ctx, s, format, output, nil); err != nil {
		return err
	}
	s.flushMetrics()

	watched := []string{
		filepath.Join(gitDir, "HEAD"),
		filepath.Join(gitDir, "packed-refs"),
		// Recursive, so branches like feature/x are covered.
		filepath.Join(gitDir, "refs", "heads") + string(filepath.Separator),
	}
	if root.Config != "" || fileExists(config.DefaultPath) {
		watched = append(watched, root.ConfigPath())
	}

	watcher, err := watch.New(watched, rerender)
	if err != nil {
		return err
	}
	slog.Info("Watching for changes", logfields.Path(output), logfields.Dir(gitDir))
	return watcher.WithDebounce(w.Debounce).Run(ctx)
}
