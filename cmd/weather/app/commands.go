package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/weather/cmd/weather/cmd/auth"
	"github.com/agentstation/weather/cmd/weather/cmd/banner"
	"github.com/agentstation/weather/cmd/weather/cmd/current"
	"github.com/agentstation/weather/cmd/weather/cmd/forecast"
	"github.com/agentstation/weather/cmd/weather/cmd/search"
	"github.com/agentstation/weather/cmd/weather/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Weather commands
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(current.NewCommand(a))
	rootCmd.AddCommand(forecast.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(auth.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(banner.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}
