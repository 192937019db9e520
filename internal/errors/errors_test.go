package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DocError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("exit status 128"), CategoryGit, SeverityFatal, "could not resolve current commit"),
			expected: "git (fatal): could not resolve current commit: exit status 128",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.err.Error())
		})
	}
}

func TestDocError_WithContext(t *testing.T) {
	err := ValidationFailed("html.theme", "must not be empty")
	require.NotNil(t, err.Context)
	assert.Equal(t, "html.theme", err.Context["field"])
	assert.Equal(t, "must not be empty", err.Context["reason"])
}

func TestCategoryThroughWrapping(t *testing.T) {
	base := CommitUnresolved("/tmp/x", stdErrors.New("not a git repository"))
	wrapped := fmt.Errorf("render: %w", base)

	assert.True(t, IsCategory(wrapped, CategoryGit))
	assert.False(t, IsCategory(wrapped, CategoryConfig))
	assert.Equal(t, CategoryGit, GetCategory(wrapped))
	assert.Equal(t, CategoryInternal, GetCategory(stdErrors.New("plain")))
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	assert.Equal(t, 0, a.ExitCodeFor(nil))
	assert.Equal(t, 1, a.ExitCodeFor(stdErrors.New("plain")))
	assert.Equal(t, 2, a.ExitCodeFor(ValidationFailed("x", "y")))
	assert.Equal(t, 7, a.ExitCodeFor(ConfigNotFound("srvcdocs.yaml")))
	assert.Equal(t, 8, a.ExitCodeFor(CommitUnresolved(".", stdErrors.New("boom"))))
	assert.Equal(t, 11, a.ExitCodeFor(WriteFailed("conf.py", stdErrors.New("denied"))))
}

func TestCLIErrorAdapter_Handle(t *testing.T) {
	var out, logs bytes.Buffer
	a := NewCLIErrorAdapter(true, slog.New(slog.NewTextHandler(&logs, nil)))
	a.out = &out

	code := a.Handle(RenderFailed("python", stdErrors.New("bad template")))

	assert.Equal(t, 11, code)
	assert.Contains(t, out.String(), "render (fatal): rendering configuration failed [format=python]: bad template")
	assert.Contains(t, logs.String(), "format=python")
}

func TestCLIErrorAdapter_FormatTerse(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	assert.Equal(t, "configuration file not found [path=x.yaml]", a.FormatError(ConfigNotFound("x.yaml")))
	assert.Equal(t, "git: could not resolve current commit [dir=.]: boom",
		a.FormatError(CommitUnresolved(".", stdErrors.New("boom"))))
	assert.Equal(t, "Error: plain", a.FormatError(stdErrors.New("plain")))
}

func TestCLIErrorAdapter_HandlePrintsContextAndCause(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		err     error
		want    string
	}{
		{
			name: "validation reason",
			err:  ValidationFailed("output", "watch needs --output or output.path"),
			want: "validation failed [field=output reason=watch needs --output or output.path]\n",
		},
		{
			name: "config path and parse cause",
			err:  ConfigInvalid("docs/srvcdocs.yaml", stdErrors.New("yaml: line 1: did not find expected node content")),
			want: "configuration could not be parsed [path=docs/srvcdocs.yaml]: yaml: line 1: did not find expected node content\n",
		},
		{
			name:    "verbose validation",
			verbose: true,
			err:     ConfigRequired("html.theme"),
			want:    "config (fatal): required configuration missing [field=html.theme]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			a := NewCLIErrorAdapter(tt.verbose, slog.New(slog.NewTextHandler(&logs, nil)))
			a.out = &out

			a.Handle(tt.err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestDocError_ErrorIncludesContext(t *testing.T) {
	err := ValidationFailed("github.user", "required when github.display is enabled")
	assert.Equal(t, "validation (fatal): validation failed [field=github.user reason=required when github.display is enabled]", err.Error())
}
