package sphinx

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/insilica/srvcdocs/internal/config"
	derrors "github.com/insilica/srvcdocs/internal/errors"
	"github.com/insilica/srvcdocs/internal/git"
	"github.com/insilica/srvcdocs/internal/logfields"
	"github.com/insilica/srvcdocs/internal/metrics"
	"github.com/insilica/srvcdocs/internal/versioning"
)

// Emitter builds Settings from configuration, the current commit and the
// build environment.
type Emitter struct {
	cfg          *config.Config
	resolver     git.CommitResolver
	resolverName string
	recorder     metrics.Recorder
}

// NewEmitter creates an Emitter that resolves the commit with resolver.
func NewEmitter(cfg *config.Config, resolver git.CommitResolver) *Emitter {
	return &Emitter{
		cfg:          cfg,
		resolver:     resolver,
		resolverName: "custom",
		recorder:     metrics.NoopRecorder{},
	}
}

// WithRecorder sets the metrics recorder.
func (e *Emitter) WithRecorder(r metrics.Recorder) *Emitter {
	if r != nil {
		e.recorder = r
	}
	return e
}

// WithResolverName sets the resolver label used in logs and metrics.
func (e *Emitter) WithResolverName(name string) *Emitter {
	e.resolverName = name
	return e
}

// Emit resolves the current commit and assembles the settings. A resolver
// failure aborts the whole emission; there is no fallback commit.
func (e *Emitter) Emit(ctx context.Context, env config.Environment) (*Settings, error) {
	start := time.Now()
	commit, err := e.resolver.ResolveHead(ctx)
	elapsed := time.Since(start)
	e.recorder.ObserveResolveDuration(e.resolverName, elapsed, err == nil)
	if err != nil {
		return nil, derrors.CommitUnresolved(e.resolverDir(), err).WithContext("resolver", e.resolverName)
	}
	slog.Debug("Resolved commit",
		logfields.Commit(commit),
		logfields.Resolver(e.resolverName),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))

	s := e.Assemble(commit, env)
	if s.HTMLContext.Versions != nil {
		e.recorder.SetVersionEntries(len(s.HTMLContext.Versions))
	}
	return s, nil
}

// Assemble builds the settings for an already resolved commit.
func (e *Emitter) Assemble(commit string, env config.Environment) *Settings {
	cfg := e.cfg
	s := &Settings{
		Project:           cfg.Project.Name,
		Copyright:         cfg.Project.Copyright,
		Author:            cfg.Project.Author,
		Extensions:        nonNil(cfg.General.Extensions),
		TemplatesPath:     nonNil(cfg.General.TemplatesPath),
		ExcludePatterns:   nonNil(cfg.General.ExcludePatterns),
		RootDoc:           cfg.General.RootDoc,
		HTMLFavicon:       cfg.HTML.Favicon,
		HTMLShowCopyright: cfg.HTML.ShowCopyright,
		HTMLShowSphinx:    cfg.HTML.ShowSphinx,
		HTMLStaticPath:    nonNil(cfg.HTML.StaticPath),
		HTMLTheme:         cfg.HTML.Theme,
		HTMLContext: HTMLContext{
			DisplayGitHub: cfg.GitHub.Display,
			GitHubUser:    cfg.GitHub.User,
			GitHubRepo:    cfg.GitHub.Repo,
			GitHubVersion: commit + cfg.GitHub.Subpath,
		},
		Commit: commit,
	}

	if cfg.Versioning.Enabled {
		current := versioning.CurrentVersion(env.CurrentVersion, env.CurrentVersionSet)
		s.HTMLContext.CurrentVersion = &current
		s.HTMLContext.Versions = versioning.BuildSwitcher(env.StableVersion)
	}
	return s
}

func (e *Emitter) resolverDir() string {
	switch r := e.resolver.(type) {
	case *git.ExecResolver:
		return r.Dir
	case *git.RepoResolver:
		return r.Dir
	default:
		return ""
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}

// WithConfig returns a copy of the emitter that reads cfg.
func (e *Emitter) WithConfig(cfg *config.Config) *Emitter {
	c := *e
	c.cfg = cfg
	return &c
}
