package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFlagsAndParse(t *testing.T) {
	root := &cobra.Command{Use: "weather"}
	flags := AddFlags(root)
	child := &cobra.Command{Use: "current", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)

	root.SetArgs([]string{"current", "-o", "json", "-v", "--no-color"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "json", flags.Format)
	assert.True(t, flags.Verbose)

	parsed := Parse(child)
	assert.Equal(t, &Flags{Format: "json", Verbose: true, NoColor: true}, parsed)
}
