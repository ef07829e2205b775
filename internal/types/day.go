package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMonth     = errors.New("the month must be in the YYYY-MM format")
	ErrInvalidDay       = errors.New("the date must be in the YYYY-MM-DD format")
	ErrInvalidTimeOfDay = errors.New("the time must be in the HH:MM format")
)

const (
	dayLayout       = "2006-01-02"
	timeOfDayLayout = "15:04"
)

// ParseDay validates a "YYYY-MM-DD" calendar key and returns it normalized.
func ParseDay(s string) (string, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}

	return t.Format(dayLayout), nil
}

// ParseTimeOfDay validates an "HH:MM" wall clock time and returns it normalized.
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return t.Format(timeOfDayLayout), nil
}
