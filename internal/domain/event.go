package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// EventStatus is the lifecycle state reported by the events service.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "UPCOMING"
	StatusOngoing   EventStatus = "ONGOING"
	StatusCompleted EventStatus = "COMPLETED"
	StatusCancelled EventStatus = "CANCELLED"
)

// Event is a read-only copy of an event record owned by the public API.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date,omitempty"`
	EventDate   string      `json:"eventDate,omitempty"`
	Location    string      `json:"location"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Status      EventStatus `json:"status"`
}

// IsUpcoming reports whether the event is eligible for the landing display.
// The comparison is exact: "upcoming" does not qualify.
func (e Event) IsUpcoming() bool {
	return e.Status == StatusUpcoming
}

// Start returns the event's start time, preferring date over eventDate.
// ok is false when neither is set or the value cannot be parsed.
func (e Event) Start() (t time.Time, ok bool) {
	raw := e.Date
	if raw == "" {
		raw = e.EventDate
	}
	return ParseDate(raw)
}

// eventWire mirrors the JSON shape of the API, which identifies records by
// either "id" or "_id" and may send ids and dates as numbers.
type eventWire struct {
	ID          json.RawMessage `json:"id"`
	MongoID     json.RawMessage `json:"_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        json.RawMessage `json:"date"`
	EventDate   json.RawMessage `json:"eventDate"`
	Location    string          `json:"location"`
	ImageURL    string          `json:"imageUrl"`
	Status      EventStatus     `json:"status"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w eventWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*e = Event{
		ID:          scalarString(w.MongoID),
		Title:       w.Title,
		Description: w.Description,
		Date:        scalarString(w.Date),
		EventDate:   scalarString(w.EventDate),
		Location:    w.Location,
		ImageURL:    w.ImageURL,
		Status:      w.Status,
	}
	if id := scalarString(w.ID); id != "" {
		e.ID = id
	}
	return nil
}

// scalarString renders a JSON string or number as a plain string. Anything
// else, including null, yields "".
func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		return n.String()
	default:
		return ""
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006",
}

// ParseDate parses the date formats the events API is known to emit: RFC 3339
// timestamps, zone-less local timestamps, bare dates or years, and epoch
// milliseconds. Zone-less timestamps are read in time.Local; bare dates are
// UTC midnight.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		loc := time.Local
		if layout == "2006-01-02" || layout == "2006" {
			loc = time.UTC
		}
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}

	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms), true
	}
	return time.Time{}, false
}
