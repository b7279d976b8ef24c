package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		wantOut []string
	}{
		{
			name:    "release",
			version: "0.1.0",
			commit:  "abc123",
			wantOut: []string{"fedsql v0.1.0 (abc123)", "Federated SQL"},
		},
		{
			name:    "dev version",
			version: "dev",
			commit:  "unknown",
			wantOut: []string{"fedsql vdev (unknown)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version, tt.commit)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{})

			require.NoError(t, cmd.Execute())
			for _, want := range tt.wantOut {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test", "none")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
}
