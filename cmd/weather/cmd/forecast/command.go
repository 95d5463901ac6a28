// Package forecast implements the forecast command.
package forecast

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/weather/internal/appcontext"
	"github.com/agentstation/weather/internal/cmd/output"
	"github.com/agentstation/weather/internal/cmd/table"
	"github.com/agentstation/weather/pkg/constants"
	"github.com/agentstation/weather/pkg/errors"
	"github.com/agentstation/weather/pkg/logging"
)

// Flags holds the forecast command flags.
type Flags struct {
	Date   string
	Days   int
	Hourly bool
}

// NewCommand creates the forecast command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "forecast <location>",
		GroupID: "core",
		Short:   "Show the forecast for a date or the next days",
		Long: `Forecast shows the daily summary of a single date (today by default),
its remaining hours with --hourly, or one row per day for the next N days
with --days. Dates may be at most 14 days ahead.`,
		Example: `  weather forecast london
  weather forecast london --date 2024-05-03 --hourly
  weather forecast london --days 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.Date, "date", "", "Date to forecast (YYYY-MM-DD), up to 14 days ahead")
	cmd.Flags().IntVar(&flags.Days, "days", 0, "Number of days to forecast, starting today (1-14)")
	cmd.Flags().BoolVar(&flags.Hourly, "hourly", false, "Show hourly values for the date")
	cmd.MarkFlagsMutuallyExclusive("date", "days")

	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, location string, flags *Flags) error {
	ctx := logging.WithLocation(cmd.Context(), location)
	logger := logging.FromContext(ctx)
	format := output.Format(app.OutputFormat())
	out := cmd.OutOrStdout()

	client, err := app.Client()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("days") {
		logger.Info().Int("days", flags.Days).Msg("Fetching data for location")
		resps, err := client.ForecastDays(ctx, location, flags.Days)
		if err != nil {
			return err
		}
		logger.Info().Msg("Request successful")
		return output.Render(out, format, table.Daily(resps), resps)
	}

	date := flags.Date
	if date == "" {
		date = app.Now().Format(constants.DateLayout)
	}

	logger.Info().Str("date", date).Msg("Fetching data for location")
	resp, err := client.ForecastOn(ctx, location, date)
	if err != nil {
		return err
	}
	logger.Info().Msg("Request successful")

	if flags.Hourly {
		return output.Render(out, format, table.Hourly(resp, app.Now()), resp)
	}

	detail, ok := table.DayDetailFrom(resp)
	if !ok {
		return errors.NewResourceError("read", "forecast", date, errors.ErrNotFound)
	}
	if format == output.FormatTable || format == "" {
		return output.NewFormatter(output.FormatTable).Format(out, detail)
	}
	return output.NewFormatter(format).Format(out, resp)
}
