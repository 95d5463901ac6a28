package banner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/weather/internal/appcontext"
)

func TestBanner(t *testing.T) {
	app := &appcontext.Mock{VersionFunc: func() string { return "1.2.3" }}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"welcome", []string{}, "Welcome to weather!\n"},
		{"version", []string{"--version"}, "weather version: 1.2.3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCommand(app)
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, out.String())
		})
	}
}
