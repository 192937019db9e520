package sphinx

import "github.com/insilica/srvcdocs/internal/versioning"

// Settings is the flat configuration mapping consumed by the documentation
// generator. Field order is the order keys are emitted in.
type Settings struct {
	Project           string      `json:"project" yaml:"project"`
	Copyright         string      `json:"copyright" yaml:"copyright"`
	Author            string      `json:"author" yaml:"author"`
	Extensions        []string    `json:"extensions" yaml:"extensions"`
	TemplatesPath     []string    `json:"templates_path" yaml:"templates_path"`
	ExcludePatterns   []string    `json:"exclude_patterns" yaml:"exclude_patterns"`
	RootDoc           string      `json:"root_doc" yaml:"root_doc"`
	HTMLFavicon       string      `json:"html_favicon,omitempty" yaml:"html_favicon,omitempty"`
	HTMLShowCopyright bool        `json:"html_show_copyright" yaml:"html_show_copyright"`
	HTMLShowSphinx    bool        `json:"html_show_sphinx" yaml:"html_show_sphinx"`
	HTMLStaticPath    []string    `json:"html_static_path" yaml:"html_static_path"`
	HTMLTheme         string      `json:"html_theme" yaml:"html_theme"`
	HTMLContext       HTMLContext `json:"html_context" yaml:"html_context"`

	// Commit is the revision the settings were generated from.
	Commit string `json:"-" yaml:"-"`
}

// HTMLContext is the set of variables exposed to the theme templates. The
// version fields are nil when the switcher is disabled.
type HTMLContext struct {
	DisplayGitHub  bool               `json:"display_github" yaml:"display_github"`
	GitHubUser     string             `json:"github_user" yaml:"github_user"`
	GitHubRepo     string             `json:"github_repo" yaml:"github_repo"`
	GitHubVersion  string             `json:"github_version" yaml:"github_version"`
	CurrentVersion *string            `json:"current_version,omitempty" yaml:"current_version,omitempty"`
	Versions       []versioning.Entry `json:"versions,omitempty" yaml:"versions,omitempty"`
}
