package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "give",
	Short: "Give landing site",
	Long: `give serves the Give landing page: the hero banner, upcoming events
from the public API and testimonials.

Available commands:
  serve      Run the web server
  events     Print the upcoming events the landing page would show
  version    Print the version number

Configuration is read from the environment and from a .env file in the
working directory. Only API_BASE_URL is required.

Use "give [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
