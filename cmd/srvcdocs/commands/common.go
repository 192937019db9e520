package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/insilica/srvcdocs/internal/config"
	"github.com/insilica/srvcdocs/internal/git"
	"github.com/insilica/srvcdocs/internal/logfields"
	"github.com/insilica/srvcdocs/internal/metrics"
	"github.com/insilica/srvcdocs/internal/sphinx"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file path; without it srvcdocs.yaml is used when present"`
	Dir         string           `short:"C" help:"Working directory of the documented repository" default:"."`
	Resolver    string           `help:"Commit resolver: exec runs git rev-parse, repo reads .git directly" enum:"exec,repo" default:"exec"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics to this textfile after each render"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render   RenderCmd   `cmd:"" default:"1" help:"Render the documentation configuration (default)"`
	Commit   CommitCmd   `cmd:"" help:"Print the commit the documentation is built from"`
	Versions VersionsCmd `cmd:"" help:"Print the version switcher entries"`
	Init     InitCmd     `cmd:"" help:"Write a configuration file with the default settings"`
	Watch    WatchCmd    `cmd:"" help:"Re-render the configuration whenever the commit or config changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig loads the configuration file. Without --config the default path
// is optional; an explicitly named file must exist, even if it is the default.
func (c *CLI) LoadConfig() (*config.Config, error) {
	if c.Config == "" {
		return config.LoadOptional(config.DefaultPath)
	}
	return config.Load(c.Config)
}

// ConfigPath returns the configuration file in effect.
func (c *CLI) ConfigPath() string {
	if c.Config == "" {
		return config.DefaultPath
	}
	return c.Config
}

// session holds what every command needs for one run.
type session struct {
	cli      *CLI
	cfg      *config.Config
	env      config.Environment
	resolver git.CommitResolver
	emitter  *sphinx.Emitter
	prom     *metrics.PrometheusRecorder
}

func (c *CLI) newSession() (*session, error) {
	if _, err := config.LoadDotEnv(c.Dir); err != nil {
		return nil, err
	}
	env, err := config.ParseEnvironment(nil)
	if err != nil {
		return nil, err
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}

	resolver, err := git.NewResolver(git.Kind(c.Resolver), c.Dir)
	if err != nil {
		return nil, err
	}

	s := &session{cli: c, cfg: cfg, env: env, resolver: resolver}
	s.emitter = sphinx.NewEmitter(cfg, resolver).WithResolverName(c.Resolver)
	if c.MetricsFile != "" {
		s.prom = metrics.NewPrometheusRecorder(nil)
		s.emitter.WithRecorder(s.prom)
	}
	return s, nil
}

func (s *session) recorder() metrics.Recorder {
	if s.prom == nil {
		return metrics.NoopRecorder{}
	}
	return s.prom
}

// flushMetrics writes the metrics textfile if one was requested. Failures are
// logged; metrics never fail a render.
func (s *session) flushMetrics() {
	if s.prom == nil {
		return
	}
	if err := metrics.WriteTextfile(s.cli.MetricsFile, s.prom.Registry()); err != nil {
		slog.Warn("Failed to write metrics", logfields.Path(s.cli.MetricsFile), logfields.Error(err))
	}
}

func (s *session) emit(ctx context.Context) (*sphinx.Settings, error) {
	return s.emitter.Emit(ctx, s.env)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
