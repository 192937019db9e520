package config

import (
	"slices"

	derrors "github.com/insilica/srvcdocs/internal/errors"
)

// Output formats understood by the render command.
const (
	FormatPython = "python"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatPython, FormatJSON, FormatYAML}

// Validate checks the fields the emitter cannot work without.
func Validate(cfg *Config) error {
	if cfg.Project.Name == "" {
		return derrors.ConfigRequired("project.name")
	}
	if cfg.HTML.Theme == "" {
		return derrors.ConfigRequired("html.theme")
	}
	if cfg.GitHub.Display {
		if cfg.GitHub.User == "" {
			return derrors.ValidationFailed("github.user", "required when github.display is enabled")
		}
		if cfg.GitHub.Repo == "" {
			return derrors.ValidationFailed("github.repo", "required when github.display is enabled")
		}
	}
	if cfg.Output.Format != "" && !slices.Contains(Formats, cfg.Output.Format) {
		return derrors.ValidationFailed("output.format", "must be one of python, json, yaml")
	}
	return nil
}
