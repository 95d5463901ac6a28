package app

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/weather/internal/cmd/alerts"
	"github.com/agentstation/weather/internal/cmd/globals"
	"github.com/agentstation/weather/internal/cmd/output"
	"github.com/agentstation/weather/pkg/constants"
	"github.com/agentstation/weather/pkg/logging"
)

// Execute runs the weather CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Weather forecasts from WeatherAPI.com",
		Version: a.version,
		Long: `weather queries WeatherAPI.com for current conditions, forecasts of up
to 14 days and location search, and renders the results as tables.

An API key is required. Store one in the OS credential store with
'weather auth <key>' or set WEATHER_API_KEY.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Weather Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	globals.AddFlags(rootCmd)
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.weather.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP timeout per request (default 30s)")

	rootCmd.SetVersionTemplate(constants.AppName + " {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := globals.Parse(cmd)
	configFile := mustGetString(cmd, "config")
	logLevel := mustGetString(cmd, "log-level")
	timeout := mustGetDuration(cmd, "timeout")

	if _, err := output.ParseFormat(flags.Format); err != nil {
		return err
	}

	if configFile != "" {
		config, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(flags.Verbose, flags.Quiet, flags.NoColor, flags.Format, logLevel, timeout)
	if a.config.Format == "" {
		a.config.Format = string(output.DetectFormat(""))
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	cmd.SetContext(logging.WithCommand(logging.WithLogger(cmd.Context(), a.logger), cmd.Name()))
	return nil
}

// ExitOnError prints err as a single colored line and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error, verbose, noColor bool) {
	if err != nil {
		_ = alerts.NewWriter(os.Stderr, noColor, verbose).Error(err)
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetDuration retrieves a duration flag value or panics if the flag doesn't exist.
func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
