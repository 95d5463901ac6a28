// Package auth implements the commands managing the stored API key.
package auth

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/weather/internal/appcontext"
	"github.com/agentstation/weather/internal/auth"
	"github.com/agentstation/weather/internal/cmd/alerts"
	"github.com/agentstation/weather/pkg/logging"
)

// NewCommand creates the auth command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:     "auth [key]",
		GroupID: "management",
		Short:   "Store the WeatherAPI.com API key",
		Long: `Auth stores the API key in the OS credential store (Keychain, Credential
Manager or Secret Service). An existing key is kept unless --overwrite is set.

A key in WEATHER_API_KEY, a .env file or the config file takes precedence
over the stored one.`,
		Example: `  weather auth 0123456789abcdef
  weather auth 0123456789abcdef --overwrite
  weather auth status
  weather auth remove`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			msg, err := app.AuthStore().StoreKey(args[0], overwrite)
			if err != nil {
				return err
			}

			w := alerts.NewWriter(cmd.OutOrStdout(), app.NoColor(), app.Verbose())
			if msg == auth.MsgPresent {
				return w.WriteAlert(alerts.NewWarning(msg))
			}
			logging.FromContext(cmd.Context()).Debug().Bool("overwrite", overwrite).Msg("Stored API key")
			return w.WriteAlert(alerts.NewSuccess(msg))
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an already stored key")

	cmd.AddCommand(NewStatusCommand(app))
	cmd.AddCommand(NewRemoveCommand(app))

	return cmd
}
