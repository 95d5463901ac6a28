// Package search implements the search command.
package search

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/weather/internal/appcontext"
	"github.com/agentstation/weather/internal/cmd/alerts"
	"github.com/agentstation/weather/internal/cmd/output"
	"github.com/agentstation/weather/internal/cmd/table"
	"github.com/agentstation/weather/pkg/logging"
)

const noResults = "The search returned no result"

// NewCommand creates the search command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "search <location>",
		GroupID: "core",
		Short:   "Search for locations matching a query",
		Long: `Search lists the locations the provider matches for a free-form query:
a city name, postcode, "lat,lon" coordinates or an IP address.`,
		Example: `  weather search london
  weather search "48.85,2.35" -o json`,
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
			locations, err := client.Search(ctx, location)
			if err != nil {
				return err
			}
			logger.Info().Int("results", len(locations)).Msg("Request successful")

			format := output.Format(app.OutputFormat())
			if len(locations) == 0 && (format == output.FormatTable || format == "") {
				return alerts.NewWriter(cmd.OutOrStdout(), app.NoColor(), app.Verbose()).
					WriteAlert(alerts.NewInfo(noResults))
			}
			return output.Render(cmd.OutOrStdout(), format, table.Search(location, locations), locations)
		},
	}
}
