// Package banner implements the main command, which greets the user or
// prints the version.
package banner

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentstation/weather/internal/appcontext"
	"github.com/agentstation/weather/pkg/constants"
)

// NewCommand creates the main command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var showVersion bool

	cmd := &cobra.Command{
		Use:   "main",
		Short: "Print the welcome banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := color.New(color.FgGreen, color.Bold)
			if app.NoColor() {
				c.DisableColor()
			}

			if showVersion {
				_, err := c.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", constants.AppName, app.Version())
				return err
			}
			_, err := c.Fprintf(cmd.OutOrStdout(), "Welcome to %s!\n", constants.AppName)
			return err
		},
	}

	cmd.Flags().BoolVar(&showVersion, "version", false, "Print the version and exit")

	return cmd
}
