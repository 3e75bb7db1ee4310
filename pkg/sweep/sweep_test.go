package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	def, err := Parse([]byte(`
name: sleep-sweep
workload: sleep
pace: 2
axes:
  - [5ms, 10ms]
  - [1, 2]
record_output: false
`))
	require.NoError(t, err)

	assert.Equal(t, "sleep-sweep", def.Name)
	assert.Equal(t, "sleep", def.Workload)
	assert.Equal(t, 2.0, def.Pace)
	require.Len(t, def.Axes, 2)
	assert.Equal(t, []any{"5ms", "10ms"}, def.Axes[0])
	assert.Equal(t, []any{1, 2}, def.Axes[1])
	assert.True(t, def.ShouldRecordArgs())
	assert.False(t, def.ShouldRecordOutput())
}

func TestParseDefaults(t *testing.T) {
	def, err := Parse([]byte(`
workload: spin
axes:
  - [100]
`))
	require.NoError(t, err)
	assert.True(t, def.ShouldRecordArgs())
	assert.True(t, def.ShouldRecordOutput())
	assert.Zero(t, def.Pace)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing workload",
			input:   "axes:\n  - [1]\n",
			wantErr: "workload is required",
		},
		{
			name:    "missing axes",
			input:   "workload: sleep\n",
			wantErr: "at least one axis",
		},
		{
			name:    "empty axis",
			input:   "workload: sleep\naxes:\n  - [1]\n  - []\n",
			wantErr: "axis 1 is empty",
		},
		{
			name:    "negative pace",
			input:   "workload: sleep\npace: -1\naxes:\n  - [1]\n",
			wantErr: "pace must not be negative",
		},
		{
			name:    "not yaml",
			input:   "{{{",
			wantErr: "parsing sweep definition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workload: sleep\naxes:\n  - [5ms]\n"), 0644))

	def, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sleep", def.Workload)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
