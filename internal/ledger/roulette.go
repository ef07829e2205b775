package ledger

import (
	"context"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// AddOption adds an option to the roulette.
func (s *State) AddOption(option string) (string, error) {
	option = strings.TrimSpace(option)
	if option == "" {
		return "", ErrEmptyOption
	}

	if slices.Contains(s.RouletteOptions, option) {
		return "", ErrDuplicateOption
	}

	s.RouletteOptions = append(s.RouletteOptions, option)
	return option, nil
}

// RemoveOption removes an option from the roulette. Removing an option
// that is not on the roulette does nothing.
func (s *State) RemoveOption(option string) {
	s.RouletteOptions = slices.DeleteFunc(s.RouletteOptions, func(o string) bool {
		return o == option
	})
}

// Spin picks one of the options. pick must return a uniformly distributed
// number in [0, n), e.g. rand.IntN.
func Spin(options []string, pick func(n int) int) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	return options[pick(len(options))], nil
}

// SpinEffect keeps spinning the roulette every interval until duration has passed and
// returns the option it settles on. Every intermediate pick is passed to tick, if set.
//
// If ctx is cancelled before the roulette settles, ctx.Err() is returned.
func SpinEffect(ctx context.Context, options []string, interval, duration time.Duration, pick func(n int) int, tick func(string)) (string, error) {
	current, err := Spin(options, pick)
	if err != nil {
		return "", err
	}

	if tick != nil {
		tick(current)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := time.NewTimer(duration)
	defer done.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-done.C:
			return current, nil
		case <-ticker.C:
			current, _ = Spin(options, pick)
			if tick != nil {
				tick(current)
			}
		}
	}
}
