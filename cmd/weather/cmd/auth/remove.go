package auth

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/weather/internal/appcontext"
	"github.com/agentstation/weather/internal/cmd/alerts"
)

// NewRemoveCommand creates the auth remove subcommand.
func NewRemoveCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.AuthStore().DeleteKey(); err != nil {
				return err
			}
			return alerts.NewWriter(cmd.OutOrStdout(), app.NoColor(), app.Verbose()).
				WriteAlert(alerts.NewSuccess("Removed stored API key."))
		},
	}
}
