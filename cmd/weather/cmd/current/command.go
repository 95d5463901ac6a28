// Package current implements the current conditions command.
package current

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/weather/internal/appcontext"
	"github.com/agentstation/weather/internal/cmd/output"
	"github.com/agentstation/weather/internal/cmd/panel"
	"github.com/agentstation/weather/pkg/logging"
)

// NewCommand creates the current command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "current <location>",
		GroupID: "core",
		Short:   "Show current weather conditions",
		Example: `  weather current london
  weather current "New York" -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := args[0]
			ctx := logging.WithLocation(cmd.Context(), location)
			logger := logging.FromContext(ctx)

			client, err := app.Client()
			if err != nil {
				return err
			}

			logger.Info().Msg("Fetching data for location")
			resp, err := client.Current(ctx, location)
			if err != nil {
				return err
			}
			logger.Info().Msg("Request successful")

			format := output.Format(app.OutputFormat())
			if format == output.FormatTable || format == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), panel.Render(panel.Summary(resp), app.NoColor()))
				return err
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), resp)
		},
	}
}
