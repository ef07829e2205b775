// Package calendar keeps the couple's shared calendar.
package calendar

import (
	"context"
	"errors"
	"strings"

	"github.com/couplefin/backend/internal/snapshot"
	"github.com/couplefin/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// SnapshotKey is the key the events are persisted under.
const SnapshotKey = "coupleCalendarEvents"

const (
	// MaxVisible is how many events are shown for a single day.
	MaxVisible = 3

	// MaxUpcoming is how many events are listed as upcoming.
	MaxUpcoming = 5

	DefaultStartTime = "09:00"
	DefaultEndTime   = "10:00"
)

var (
	ErrEventNotFound = errors.New("there is no event with this ID")
	ErrMissingTitle  = errors.New("the event needs a title")
)

type Event struct {
	ID        uuid.UUID `json:"id" example:"5d0f4d7a-7f53-4d4c-8a01-5b7e0c2a3f9e"`
	Date      string    `json:"date" example:"2024-05-12"`
	Title     string    `json:"title" example:"Jantar com a sogra"`
	StartTime string    `json:"startTime" example:"19:00"`
	EndTime   string    `json:"endTime" example:"22:00"`
}

// compare orders events by date, then by start time.
func compare(a, b Event) int {
	if c := strings.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	return strings.Compare(a.StartTime, b.StartTime)
}

// Day is what is shown for a single day.
type Day struct {
	Date     string  `json:"date" example:"2024-05-12"`
	Visible  []Event `json:"visible"`
	Overflow int     `json:"overflow" example:"2"` // Number of events that are not visible
}

// Calendar is the list of events, persisted after every change.
type Calendar struct {
	keeper *snapshot.Keeper[[]Event]
}

func defaults() []Event {
	return []Event{}
}

// New loads the events from store.
func New(ctx context.Context, store snapshot.Store) (*Calendar, error) {
	keeper, err := snapshot.Open(ctx, store, SnapshotKey, defaults, slices.Clone[[]Event])
	if err != nil {
		return nil, err
	}

	return &Calendar{keeper: keeper}, nil
}

// Events returns all events in the order they were added.
func (c *Calendar) Events() []Event {
	events := c.keeper.Get()
	if events == nil {
		return []Event{}
	}
	return events
}

// Add validates an event and adds it with a new ID. Missing times default to
// 09:00 and 10:00. Overlapping events are allowed.
func (c *Calendar) Add(ctx context.Context, e Event) (Event, error) {
	date, err := types.ParseDay(strings.TrimSpace(e.Date))
	if err != nil {
		return Event{}, err
	}
	e.Date = date

	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return Event{}, ErrMissingTitle
	}

	if e.StartTime == "" {
		e.StartTime = DefaultStartTime
	}
	if e.EndTime == "" {
		e.EndTime = DefaultEndTime
	}

	if e.StartTime, err = types.ParseTimeOfDay(e.StartTime); err != nil {
		return Event{}, err
	}
	if e.EndTime, err = types.ParseTimeOfDay(e.EndTime); err != nil {
		return Event{}, err
	}

	e.ID = uuid.New()

	_, err = c.keeper.Update(ctx, func(events *[]Event) error {
		*events = append(*events, e)
		return nil
	})
	if err != nil {
		return Event{}, err
	}

	return e, nil
}

// Delete removes the event with the given ID.
func (c *Calendar) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := c.keeper.Update(ctx, func(events *[]Event) error {
		i := slices.IndexFunc(*events, func(e Event) bool {
			return e.ID == id
		})
		if i < 0 {
			return ErrEventNotFound
		}

		*events = slices.Delete(*events, i, i+1)
		return nil
	})
	return err
}

// ForDay returns the events on a date, sorted by start time.
func (c *Calendar) ForDay(date string) []Event {
	result := []Event{}
	for _, e := range c.keeper.Get() {
		if e.Date == date {
			result = append(result, e)
		}
	}

	slices.SortStableFunc(result, compare)
	return result
}

// Day returns the visible events of a date and how many more there are.
func (c *Calendar) Day(date string) Day {
	events := c.ForDay(date)
	day := Day{
		Date:    date,
		Visible: events,
	}

	if len(events) > MaxVisible {
		day.Visible = events[:MaxVisible]
		day.Overflow = len(events) - MaxVisible
	}

	return day
}

// Upcoming returns the first events sorted by date and start time.
//
// Events in the past are included, the list is not relative to today.
func (c *Calendar) Upcoming() []Event {
	events := c.Events()
	slices.SortStableFunc(events, compare)

	if len(events) > MaxUpcoming {
		events = events[:MaxUpcoming]
	}
	return events
}

// Reset removes all events.
func (c *Calendar) Reset(ctx context.Context) error {
	return c.keeper.Reset(ctx)
}

// Export returns the persisted snapshot.
func (c *Calendar) Export() ([]byte, error) {
	return c.keeper.Export()
}
