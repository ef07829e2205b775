package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Goal is something the couple saves for.
type Goal struct {
	ID            uuid.UUID       `json:"id" example:"0c8f6a8e-4d3e-4e52-9a49-2c5a83e7b1c4"`
	Name          string          `json:"name" example:"Viagem para a praia"`
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"1500" swaggertype:"number"`
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"300" swaggertype:"number"` // Never more than the target
	DateCreated   time.Time       `json:"dateCreated" example:"2024-05-12T17:59:23.491514Z"`
}

// Progress is the saved amount in percent of the target.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	return g.CurrentAmount.Div(g.TargetAmount).Mul(fullPercent)
}

// Completed reports if the target has been reached.
func (g Goal) Completed() bool {
	return g.Progress().GreaterThanOrEqual(fullPercent)
}

// GoalStatus is a goal with its progress.
type GoalStatus struct {
	Goal
	Progress  decimal.Decimal `json:"progress" example:"20" swaggertype:"number"`
	Completed bool            `json:"completed" example:"false"`
}

// Status returns the goal with its progress.
func (g Goal) Status() GoalStatus {
	return GoalStatus{
		Goal:      g,
		Progress:  g.Progress(),
		Completed: g.Completed(),
	}
}

func clamp(v, limit decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, decimal.Min(v, limit))
}

func (s State) goalIndex(id uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}

	return slices.IndexFunc(s.Goals, func(g Goal) bool {
		return g.ID == id
	})
}

// Goal returns the goal with the given ID.
func (s State) Goal(id uuid.UUID) (Goal, error) {
	i := s.goalIndex(id)
	if i < 0 {
		return Goal{}, ErrGoalNotFound
	}

	return s.Goals[i], nil
}

// UpsertGoal stores a goal.
//
// A goal with the ID of an existing goal replaces it in place. Any other goal is
// appended with a new ID and creation time. The current amount is clamped to the target.
func (s *State) UpsertGoal(g Goal, now time.Time) (Goal, error) {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" || !g.TargetAmount.IsPositive() {
		return Goal{}, ErrInvalidGoal
	}

	g.CurrentAmount = clamp(g.CurrentAmount, g.TargetAmount)

	i := s.goalIndex(g.ID)
	if i >= 0 {
		s.Goals[i] = g
		return g, nil
	}

	g.ID = uuid.New()
	g.DateCreated = now
	s.Goals = append(s.Goals, g)
	return g, nil
}

// EditGoal changes the name and target of a goal and keeps what has already been saved.
func (s *State) EditGoal(id uuid.UUID, name string, target decimal.Decimal) (Goal, error) {
	old, err := s.Goal(id)
	if err != nil {
		return Goal{}, err
	}

	old.Name = name
	old.TargetAmount = target
	return s.UpsertGoal(old, old.DateCreated)
}

// DeleteGoal removes a goal. What was saved for it is not refunded.
func (s *State) DeleteGoal(id uuid.UUID) error {
	i := s.goalIndex(id)
	if i < 0 {
		return ErrGoalNotFound
	}

	s.Goals = slices.Delete(s.Goals, i, i+1)
	return nil
}

// Contribute moves money from the balance to a goal.
//
// The goal never exceeds its target, but the full amount is always taken from the balance.
func (s *State) Contribute(id uuid.UUID, rawAmount string) (Goal, error) {
	amount, err := ParseRawAmount(rawAmount)
	if err != nil {
		return Goal{}, fmt.Errorf("%w: %w", ErrInvalidContribution, err)
	}

	i := s.goalIndex(id)
	if i < 0 {
		return Goal{}, ErrGoalNotFound
	}

	if amount.GreaterThan(s.Balance) {
		return Goal{}, fmt.Errorf("%w: %s is more than the balance of %s", ErrInsufficientBalance, amount.StringFixed(2), s.Balance.StringFixed(2))
	}

	g := s.Goals[i]
	g.CurrentAmount = clamp(g.CurrentAmount.Add(amount), g.TargetAmount)
	s.Goals[i] = g
	s.Balance = s.Balance.Sub(amount)
	return g, nil
}
