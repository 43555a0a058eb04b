// Package format prints event cards for the command line.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/givefund/give/internal/modules/events"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E8590C"))
	emptyStyle  = lipgloss.NewStyle().Italic(true).Faint(true)
)

// CardDisplay is the JSON shape of one card.
type CardDisplay struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Excerpt  string `json:"excerpt"`
	ShareURL string `json:"share_url"`
}

// CardsTable writes the cards as an aligned table.
func CardsTable(w io.Writer, cards []events.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("No upcoming events"))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(w, headerStyle.Render("Upcoming events"))
	fmt.Fprintln(tw, "DATE\tTIME\tTITLE\tLOCATION")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\n",
			c.MonthDay, c.Year,
			c.Time,
			events.Truncate(c.Title, 40),
			events.Truncate(c.Location, 30))
	}
}

// CardsJSON writes the cards as indented JSON.
func CardsJSON(w io.Writer, cards []events.Card) error {
	displays := make([]CardDisplay, len(cards))
	for i, c := range cards {
		displays[i] = CardDisplay{
			ID:       c.ID,
			Title:    c.Title,
			Date:     c.ModalDate,
			Time:     c.Time,
			Location: c.Location,
			Status:   c.Status,
			Excerpt:  c.Excerpt,
			ShareURL: c.ShareURL,
		}
	}

	output := struct {
		Events []CardDisplay `json:"events"`
		Count  int           `json:"count"`
	}{
		Events: displays,
		Count:  len(displays),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
