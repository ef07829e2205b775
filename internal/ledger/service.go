package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/couplefin/backend/internal/snapshot"
	"github.com/couplefin/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service owns the State of one couple and persists it after every change.
type Service struct {
	keeper *snapshot.Keeper[State]
	now    func() time.Time
	pick   func(n int) int

	spinInterval time.Duration
	spinDuration time.Duration
}

const (
	DefaultSpinInterval = 100 * time.Millisecond
	DefaultSpinDuration = 3 * time.Second
)

// Option configures a Service.
type Option func(*Service)

// WithClock sets the function used to get the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithPicker sets the random source of the roulette.
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) {
		s.pick = pick
	}
}

// WithSpinTiming sets how often and how long the animated roulette spins.
func WithSpinTiming(interval, duration time.Duration) Option {
	return func(s *Service) {
		s.spinInterval = interval
		s.spinDuration = duration
	}
}

// NewService loads the State from store.
func NewService(ctx context.Context, store snapshot.Store, opts ...Option) (*Service, error) {
	keeper, err := snapshot.Open(ctx, store, SnapshotKey, Default, Clone)
	if err != nil {
		return nil, err
	}

	s := &Service{
		keeper: keeper,
		now: func() time.Time {
			return time.Now().In(time.UTC)
		},
		pick:         rand.IntN,
		spinInterval: DefaultSpinInterval,
		spinDuration: DefaultSpinDuration,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// State returns a copy of the current State.
func (s *Service) State() State {
	return s.keeper.Get()
}

// Now is the current time according to the service's clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// Reset discards everything and starts over with the defaults.
func (s *Service) Reset(ctx context.Context) error {
	return s.keeper.Reset(ctx)
}

// Export returns the persisted snapshot.
func (s *Service) Export() (json.RawMessage, error) {
	return s.keeper.Export()
}

func (s *Service) AddTransaction(ctx context.Context, description, rawAmount string, transactionType TransactionType, responsiblePartner, category string) (Transaction, error) {
	var t Transaction
	_, err := s.keeper.Update(ctx, func(st *State) (err error) {
		t, err = st.AddTransaction(description, rawAmount, transactionType, responsiblePartner, category, s.now())
		return err
	})
	return t, err
}

func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID, amount *decimal.Decimal) (Transaction, error) {
	var t Transaction
	_, err := s.keeper.Update(ctx, func(st *State) (err error) {
		t, err = st.DeleteTransaction(id, amount)
		return err
	})
	return t, err
}

// CurrentMonth is the month the budgeting view is filtered to.
func (s *Service) CurrentMonth() types.Month {
	return types.MonthOf(s.now())
}

// UpsertBudget sets the limit of a category. rawLimit is a number of cents.
func (s *Service) UpsertBudget(ctx context.Context, category, rawLimit string) (Budget, error) {
	limit, err := ParseRawAmount(rawLimit)
	if err != nil {
		return Budget{}, fmt.Errorf("%w: %w", ErrInvalidBudget, err)
	}

	var b Budget
	_, err = s.keeper.Update(ctx, func(st *State) (err error) {
		b, err = st.UpsertBudget(Budget{Category: category, Limit: limit})
		return err
	})
	return b, err
}

func (s *Service) DeleteBudget(ctx context.Context, category string) error {
	_, err := s.keeper.Update(ctx, func(st *State) error {
		st.DeleteBudget(category)
		return nil
	})
	return err
}

func (s *Service) PayBudget(ctx context.Context, category string) (Transaction, error) {
	var t Transaction
	_, err := s.keeper.Update(ctx, func(st *State) (err error) {
		t, err = st.PayBudget(category, s.now())
		return err
	})
	return t, err
}

// CreateGoal adds a new goal. rawTarget is a number of cents.
func (s *Service) CreateGoal(ctx context.Context, name, rawTarget string) (Goal, error) {
	target, err := ParseRawAmount(rawTarget)
	if err != nil {
		return Goal{}, fmt.Errorf("%w: %w", ErrInvalidGoal, err)
	}

	var g Goal
	_, err = s.keeper.Update(ctx, func(st *State) (err error) {
		g, err = st.UpsertGoal(Goal{Name: name, TargetAmount: target, CurrentAmount: decimal.Zero}, s.now())
		return err
	})
	return g, err
}

// EditGoal renames a goal and changes its target. rawTarget is a number of cents.
func (s *Service) EditGoal(ctx context.Context, id uuid.UUID, name, rawTarget string) (Goal, error) {
	target, err := ParseRawAmount(rawTarget)
	if err != nil {
		return Goal{}, fmt.Errorf("%w: %w", ErrInvalidGoal, err)
	}

	var g Goal
	_, err = s.keeper.Update(ctx, func(st *State) (err error) {
		g, err = st.EditGoal(id, name, target)
		return err
	})
	return g, err
}

func (s *Service) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	_, err := s.keeper.Update(ctx, func(st *State) error {
		return st.DeleteGoal(id)
	})
	return err
}

func (s *Service) Contribute(ctx context.Context, id uuid.UUID, rawAmount string) (Goal, error) {
	var g Goal
	_, err := s.keeper.Update(ctx, func(st *State) (err error) {
		g, err = st.Contribute(id, rawAmount)
		return err
	})
	return g, err
}

func (s *Service) AddOption(ctx context.Context, option string) (string, error) {
	var added string
	_, err := s.keeper.Update(ctx, func(st *State) (err error) {
		added, err = st.AddOption(option)
		return err
	})
	return added, err
}

func (s *Service) RemoveOption(ctx context.Context, option string) error {
	_, err := s.keeper.Update(ctx, func(st *State) error {
		st.RemoveOption(option)
		return nil
	})
	return err
}

// Spin picks one of the roulette options. Spinning does not change the state.
func (s *Service) Spin() (string, error) {
	return Spin(s.keeper.Get().RouletteOptions, s.pick)
}

// SpinAnimated spins the roulette with the cosmetic delay, passing every
// intermediate pick to tick.
func (s *Service) SpinAnimated(ctx context.Context, tick func(string)) (string, error) {
	return SpinEffect(ctx, s.keeper.Get().RouletteOptions, s.spinInterval, s.spinDuration, s.pick, tick)
}

func (s *Service) AddJournalEntry(ctx context.Context, text, mood string) (JournalEntry, error) {
	var entry JournalEntry
	_, err := s.keeper.Update(ctx, func(st *State) (err error) {
		entry, err = st.AddJournalEntry(text, mood, s.now())
		return err
	})
	return entry, err
}

func (s *Service) DeleteJournalEntry(ctx context.Context, id uuid.UUID) error {
	_, err := s.keeper.Update(ctx, func(st *State) error {
		return st.DeleteJournalEntry(id)
	})
	return err
}

func (s *Service) SetCoupleNames(ctx context.Context, names CoupleNames) (CoupleNames, error) {
	var updated CoupleNames
	_, err := s.keeper.Update(ctx, func(st *State) (err error) {
		updated, err = st.SetCoupleNames(names)
		return err
	})
	return updated, err
}
