package config

import (
	"fmt"
	"os"

	derrors "github.com/insilica/srvcdocs/internal/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file the CLI looks for when --config is not given.
const DefaultPath = "srvcdocs.yaml"

// Config describes the documentation build settings emitted by srvcdocs.
type Config struct {
	Project    ProjectConfig    `yaml:"project"`
	General    GeneralConfig    `yaml:"general"`
	HTML       HTMLConfig       `yaml:"html"`
	GitHub     GitHubConfig     `yaml:"github"`
	Versioning VersioningConfig `yaml:"versioning"`
	Output     OutputConfig     `yaml:"output"`
}

// ProjectConfig holds project information shown by the theme.
type ProjectConfig struct {
	Name      string `yaml:"name"`
	Copyright string `yaml:"copyright"`
	Author    string `yaml:"author"`
}

// GeneralConfig holds generator-wide settings.
type GeneralConfig struct {
	Extensions      []string `yaml:"extensions"`
	TemplatesPath   []string `yaml:"templates_path"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
	RootDoc         string   `yaml:"root_doc"`
}

// HTMLConfig holds HTML output options.
type HTMLConfig struct {
	Favicon       string   `yaml:"favicon,omitempty"`
	ShowCopyright bool     `yaml:"show_copyright"`
	ShowSphinx    bool     `yaml:"show_sphinx"`
	StaticPath    []string `yaml:"static_path"`
	Theme         string   `yaml:"theme"`
}

// GitHubConfig controls the "edit on GitHub" link. Subpath is appended to the
// resolved commit to form the ref the link points at.
type GitHubConfig struct {
	Display bool   `yaml:"display"`
	User    string `yaml:"user"`
	Repo    string `yaml:"repo"`
	Subpath string `yaml:"subpath"`
}

// VersioningConfig toggles the theme's version switcher.
type VersioningConfig struct {
	Enabled bool `yaml:"enabled"`
}

// OutputConfig holds defaults for the render command.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path,omitempty"`
}

// Defaults returns the SRVC documentation settings.
func Defaults() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:      "SRVC",
			Copyright: "2023, Insilica",
			Author:    "Insilica",
		},
		General: GeneralConfig{
			Extensions:      []string{},
			TemplatesPath:   []string{"_templates"},
			ExcludePatterns: []string{"_build", "Thumbs.db", ".DS_Store"},
			RootDoc:         "contents",
		},
		HTML: HTMLConfig{
			Favicon:    "favicon.ico",
			StaticPath: []string{"_static"},
			Theme:      "sphinx_rtd_theme",
		},
		GitHub: GitHubConfig{
			Display: true,
			User:    "insilica",
			Repo:    "rs-srvc",
			Subpath: "/docs/",
		},
		Versioning: VersioningConfig{Enabled: true},
		Output:     OutputConfig{Format: FormatPython},
	}
}

// Load reads configPath on top of Defaults and validates the result.
// Environment variables referenced as ${VAR} are expanded before parsing.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, derrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, derrors.ConfigInvalid(configPath, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns Defaults when configPath does not exist.
func LoadOptional(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Defaults(), nil
	}
	return Load(configPath)
}

// Init creates a new configuration file populated with the defaults.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := "# srvcdocs configuration. STABLE_VERSION and CURRENT_VERSION are read from the environment.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return derrors.WriteFailed(configPath, err)
	}
	return nil
}
