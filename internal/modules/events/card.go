package events

import (
	"strings"
	"time"

	"github.com/givefund/give/internal/assets"
	"github.com/givefund/give/internal/domain"
	"github.com/givefund/give/internal/publicapi"
)

const (
	// ExcerptLength is the number of characters shown on a card before the
	// description is cut.
	ExcerptLength = 200

	// InvalidDate is rendered in every date slot of an event whose date is
	// missing or unparseable.
	InvalidDate = "Invalid Date"
)

// CardOptions carries the per-request context a Card needs.
type CardOptions struct {
	Location   *time.Location // display time zone
	APIBaseURL string         // public API root for image URLs
	ImageProxy bool           // route images through /images/*
	SiteURL    string         // origin used in share links
}

// Card is the view-model of one event as rendered on the landing page and
// in the detail modal.
type Card struct {
	ID          string
	Title       string
	Description string
	Excerpt     string
	Location    string
	Status      string
	StatusClass string

	HasImage bool
	ImageURL string

	MonthDay  string
	Year      string
	Weekday   string
	Time      string
	ModalDate string

	Slug     string
	ShareURL string
}

// NewCard maps an event to its view-model.
func NewCard(e domain.Event, opts CardOptions) Card {
	slug := Slugify(e.Title)
	c := Card{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Excerpt:     Truncate(e.Description, ExcerptLength),
		Location:    e.Location,
		Status:      string(e.Status),
		StatusClass: strings.TrimSpace("status " + lower.String(string(e.Status))),
		HasImage:    e.ImageURL != "",
		ImageURL:    imageURL(e.ImageURL, opts),
		Slug:        slug,
		ShareURL:    strings.TrimRight(opts.SiteURL, "/") + "/events/" + slug,
	}

	start, ok := e.Start()
	if !ok {
		c.MonthDay = InvalidDate
		c.Weekday = InvalidDate
		c.Time = InvalidDate
		c.ModalDate = InvalidDate
		return c
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	start = start.In(loc)
	c.MonthDay = start.Format("Jan 2")
	c.Year = start.Format("2006")
	c.Weekday = start.Format("Monday")
	c.Time = start.Format("03:04 PM")
	c.ModalDate = start.Format("1/2/2006")
	return c
}

// Key identifies the card in modal URLs: the event id, or the slug for
// records the API sent without one.
func (c Card) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Slug
}

// HasDate reports whether the event's start date could be read.
func (c Card) HasDate() bool {
	return c.ModalDate != InvalidDate
}

// imageURL resolves the image source for an event. The modal always shows
// an image, so an event without one gets the placeholder.
func imageURL(relativePath string, opts CardOptions) string {
	switch {
	case relativePath == "":
		return assets.PlaceholderPath
	case opts.ImageProxy:
		return "/images/" + strings.TrimLeft(relativePath, "/")
	default:
		return publicapi.ImageURL(opts.APIBaseURL, relativePath)
	}
}

// Truncate shortens s to max characters followed by "..." when it is
// longer than max; otherwise s is returned unchanged.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
