package events

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/emersion/go-ical"
	"github.com/givefund/give/internal/domain"
)

// ErrNoStartDate is returned when an event without a usable date is exported.
var ErrNoStartDate = errors.New("event has no start date")

const productID = "-//give//landing events//EN"

// WriteCalendar encodes e as a single-event iCalendar document. shareURL is
// attached as the event URL; now stamps DTSTAMP.
func WriteCalendar(w io.Writer, e domain.Event, shareURL string, now time.Time) error {
	start, ok := e.Start()
	if !ok {
		return ErrNoStartDate
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, eventUID(e))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, start.UTC())
	event.Props.SetText(ical.PropSummary, e.Title)
	if e.Description != "" {
		event.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Location != "" {
		event.Props.SetText(ical.PropLocation, e.Location)
	}
	if u, err := url.Parse(shareURL); err == nil && u.IsAbs() {
		event.Props.SetURI(ical.PropURL, u)
	}
	status := "CONFIRMED"
	if e.Status == domain.StatusCancelled {
		status = "CANCELLED"
	}
	event.Props.SetText(ical.PropStatus, status)

	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func eventUID(e domain.Event) string {
	id := e.ID
	if id == "" {
		id = Slugify(e.Title)
	}
	return id + "@give-events"
}
