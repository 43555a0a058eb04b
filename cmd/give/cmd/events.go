package cmd

import (
	"fmt"

	"github.com/givefund/give/cmd/give/internal/format"
	"github.com/givefund/give/internal/config"
	"github.com/givefund/give/internal/modules/events"
	"github.com/givefund/give/internal/publicapi"
	"github.com/spf13/cobra"
)

var eventsOutputFormat string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print the upcoming events the landing page would show",
	Long: `Fetch the event list from the public API and print the cards the events
section would render: at most three UPCOMING events, soonest first.

Examples:
  give events                  # styled table
  give events --format json    # machine-readable output

Output formats:
  table - Human-readable table (default)
  json  - JSON with every card field`,
	RunE: runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := publicapi.New(cfg.GetAPIBaseURL(), cfg.GetEventsPath(), cfg.GetAPITimeout())
	list, err := client.Events(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetch events: %w", err)
	}

	opts := events.CardOptions{
		Location:   cfg.GetLocation(),
		APIBaseURL: cfg.GetAPIBaseURL(),
		SiteURL:    cfg.GetAppBaseURL(),
	}
	upcoming := events.SelectUpcoming(list, events.UpcomingLimit)
	cards := make([]events.Card, len(upcoming))
	for i, e := range upcoming {
		cards[i] = events.NewCard(e, opts)
	}

	out := cmd.OutOrStdout()
	switch eventsOutputFormat {
	case "json":
		return format.CardsJSON(out, cards)
	case "table", "":
		format.CardsTable(out, cards)
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid: table, json)", eventsOutputFormat)
	}
}

func init() {
	eventsCmd.Flags().StringVarP(&eventsOutputFormat, "format", "f", "table", "output format (table or json)")
	rootCmd.AddCommand(eventsCmd)
}
