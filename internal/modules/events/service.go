package events

import (
	"context"
	"fmt"
	"slices"

	"github.com/givefund/give/internal/domain"
	"github.com/givefund/give/internal/middleware"
)

// UpcomingLimit is how many events the landing section shows.
const UpcomingLimit = 3

// Source supplies the raw event list. *publicapi.Client satisfies it.
type Source interface {
	Events(ctx context.Context) ([]domain.Event, error)
}

// Service turns the public event list into what the landing page shows.
// It holds no state between calls: every call performs one fetch.
type Service struct {
	source Source
}

// NewService creates a Service reading from source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Upcoming fetches the event list and returns the first UpcomingLimit
// upcoming events in ascending date order. Fetch failures are logged and
// yield an empty list.
func (s *Service) Upcoming(ctx context.Context) []domain.Event {
	all, err := s.source.Events(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Error fetching events", "error", err)
		return nil
	}
	return SelectUpcoming(all, UpcomingLimit)
}

// Find returns the event with the given id.
func (s *Service) Find(ctx context.Context, id string) (domain.Event, error) {
	return s.find(ctx, func(e domain.Event) bool { return e.ID == id })
}

// FindByKey returns the event a Card.Key refers to: its id, or its slug when
// the record has no id.
func (s *Service) FindByKey(ctx context.Context, key string) (domain.Event, error) {
	if key == "" {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return s.find(ctx, func(e domain.Event) bool {
		if e.ID != "" {
			return e.ID == key
		}
		return Slugify(e.Title) == key
	})
}

// FindBySlug returns the first event whose title slugifies to slug.
func (s *Service) FindBySlug(ctx context.Context, slug string) (domain.Event, error) {
	if slug == "" {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return s.find(ctx, func(e domain.Event) bool { return Slugify(e.Title) == slug })
}

func (s *Service) find(ctx context.Context, match func(domain.Event) bool) (domain.Event, error) {
	all, err := s.source.Events(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Error fetching events", "error", err)
		return domain.Event{}, fmt.Errorf("%w: %v", domain.ErrEventNotFound, err)
	}
	for _, e := range all {
		if match(e) {
			return e, nil
		}
	}
	return domain.Event{}, domain.ErrEventNotFound
}

// SelectUpcoming filters events to status UPCOMING, sorts them by start date
// and keeps at most limit. Events without a usable date sort after dated
// ones and otherwise keep their input order. The input is not modified.
func SelectUpcoming(events []domain.Event, limit int) []domain.Event {
	upcoming := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if e.IsUpcoming() {
			upcoming = append(upcoming, e)
		}
	}

	slices.SortStableFunc(upcoming, func(a, b domain.Event) int {
		at, aok := a.Start()
		bt, bok := b.Start()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return 1
		case !bok:
			return -1
		default:
			return at.Compare(bt)
		}
	})

	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
