package versioning

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildSwitcher(t *testing.T) {
	tests := []struct {
		name   string
		stable string
		want   []Entry
	}{
		{
			name: "no stable release",
			want: []Entry{{"latest", "/latest/"}, {"stable", "/stable/"}},
		},
		{
			name:   "stable release appended",
			stable: "2.0",
			want:   []Entry{{"latest", "/latest/"}, {"stable", "/stable/"}, {"2.0", "/2.0/"}},
		},
		{
			name:   "value is not deduplicated",
			stable: "stable",
			want:   []Entry{{"latest", "/latest/"}, {"stable", "/stable/"}, {"stable", "/stable/"}},
		},
		{
			name:   "value is not validated",
			stable: "v 1/x",
			want:   []Entry{{"latest", "/latest/"}, {"stable", "/stable/"}, {"v 1/x", "/v 1/x/"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSwitcher(tt.stable))
		})
	}
}

func TestCurrentVersion(t *testing.T) {
	assert.Equal(t, "latest", CurrentVersion("", false))
	assert.Equal(t, "latest", CurrentVersion("ignored", false))
	assert.Equal(t, "2.0", CurrentVersion("2.0", true))
	assert.Equal(t, "", CurrentVersion("", true))
}

func TestEntrySerialisesAsPair(t *testing.T) {
	entries := BuildSwitcher("2.0")

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t, `[["latest","/latest/"],["stable","/stable/"],["2.0","/2.0/"]]`, string(data))

	out, err := yaml.Marshal(map[string]any{"versions": entries})
	require.NoError(t, err)

	var decoded map[string][][]string
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, [][]string{{"latest", "/latest/"}, {"stable", "/stable/"}, {"2.0", "/2.0/"}}, decoded["versions"])
}
