package sphinx

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/insilica/srvcdocs/internal/versioning"
)

const confTemplate = `# Configuration file for the Sphinx documentation builder.
# Generated by {{ .Generator | default "srvcdocs" }} at commit {{ .Settings.Commit | trunc 12 }}. Do not edit.
#
# For the full list of built-in configuration values, see the documentation:
# https://www.sphinx-doc.org/en/master/usage/configuration.html

{{- with .Settings }}

commit_id = {{ py .Commit }}

# -- Project information -----------------------------------------------------

project = {{ py .Project }}
copyright = {{ py .Copyright }}
author = {{ py .Author }}

# -- General configuration ---------------------------------------------------

extensions = {{ py .Extensions }}

templates_path = {{ py .TemplatesPath }}
exclude_patterns = {{ py .ExcludePatterns }}

# The root toctree document.
root_doc = {{ py .RootDoc }}

# -- Options for HTML output -------------------------------------------------
{{ with .HTMLFavicon }}
html_favicon = {{ py . }}
{{- end }}
html_show_copyright = {{ py .HTMLShowCopyright }}
html_show_sphinx = {{ py .HTMLShowSphinx }}
html_static_path = {{ py .HTMLStaticPath }}
html_theme = {{ py .HTMLTheme }}
html_context = {
{{- with .HTMLContext }}
  'display_github': {{ py .DisplayGitHub }},
  'github_user': {{ py .GitHubUser }},
  'github_repo': {{ py .GitHubRepo }},
  'github_version': {{ py .GitHubVersion }},
{{- if .CurrentVersion }}
  'current_version': {{ py .CurrentVersion }},
{{- end }}
{{- if .Versions }}
  'versions': {{ py .Versions }},
{{- end }}
{{- end }}
}
{{- end }}
`

var confTmpl = template.Must(template.New("conf.py").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{"py": pyLiteral}).
	Option("missingkey=error").
	Parse(confTemplate))

func renderPython(w io.Writer, s *Settings) error {
	data := map[string]any{
		"Generator": "srvcdocs",
		"Settings":  s,
	}
	if err := confTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render conf.py: %w", err)
	}
	return nil
}

var pyEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// pyLiteral renders v as a Python literal.
func pyLiteral(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return "'" + pyEscaper.Replace(t) + "'", nil
	case *string:
		if t == nil {
			return "None", nil
		}
		return pyLiteral(*t)
	case bool:
		if t {
			return "True", nil
		}
		return "False", nil
	case []string:
		parts := make([]string, len(t))
		for i, s := range t {
			parts[i], _ = pyLiteral(s)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case versioning.Entry:
		return pyLiteral(t.Pair())
	case []versioning.Entry:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i], _ = pyLiteral(e)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return "", fmt.Errorf("no python literal for %T", v)
	}
}
