package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want Environment
	}{
		{
			name: "nothing set",
			vars: map[string]string{},
			want: Environment{},
		},
		{
			name: "both set",
			vars: map[string]string{EnvStableVersion: "2.0", EnvCurrentVersion: "2.0"},
			want: Environment{StableVersion: "2.0", CurrentVersion: "2.0", CurrentVersionSet: true},
		},
		{
			name: "current set but empty",
			vars: map[string]string{EnvCurrentVersion: ""},
			want: Environment{CurrentVersionSet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvironment(tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnvironment_ProcessEnv(t *testing.T) {
	t.Setenv(EnvStableVersion, "1.4")

	got, err := ParseEnvironment(nil)
	require.NoError(t, err)
	assert.Equal(t, "1.4", got.StableVersion)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SRVCDOCS_TEST_DOTENV=from-file\nSRVCDOCS_TEST_KEEP=from-file\n"), 0o600))

	t.Setenv("SRVCDOCS_TEST_KEEP", "from-process")
	t.Setenv("SRVCDOCS_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("SRVCDOCS_TEST_DOTENV"))

	loaded, err := LoadDotEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, ".env")}, loaded)
	assert.Equal(t, "from-file", os.Getenv("SRVCDOCS_TEST_DOTENV"))
	assert.Equal(t, "from-process", os.Getenv("SRVCDOCS_TEST_KEEP"))
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	loaded, err := LoadDotEnv(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
