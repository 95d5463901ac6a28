package auth

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/weather/internal/appcontext"
	"github.com/agentstation/weather/internal/auth"
	"github.com/agentstation/weather/internal/cmd/alerts"
	"github.com/agentstation/weather/internal/cmd/output"
	"github.com/agentstation/weather/pkg/constants"
)

// NewStatusCommand creates the auth status subcommand.
func NewStatusCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the API key comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status := auth.Check(app.ConfiguredKey(), app.AuthStore())

			format := output.Format(app.OutputFormat())
			if format != output.FormatTable && format != "" {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), status)
			}

			w := alerts.NewWriter(cmd.OutOrStdout(), app.NoColor(), true)
			if status.State == auth.StateMissing {
				return w.WriteAlert(alerts.NewError("No API key configured").
					WithDetails("store one with 'weather auth <key>' or set " + constants.APIKeyEnv))
			}
			return w.WriteAlert(alerts.NewSuccess("API key configured").
				WithDetails("source: "+string(status.Source), "key: "+status.Preview))
		},
	}
}
