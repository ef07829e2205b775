package ledger

import (
	"strings"
	"time"

	"github.com/couplefin/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Budget is a monthly spending limit for a category.
type Budget struct {
	Category string          `json:"category" example:"Alimentação"`
	Limit    decimal.Decimal `json:"limit" example:"100" swaggertype:"number"`
}

type Health string

const (
	HealthNormal     Health = "normal"
	HealthWarning    Health = "warning"
	HealthOverBudget Health = "over-budget"
)

var (
	warningPercent = decimal.NewFromInt(75)
	fullPercent    = decimal.NewFromInt(100)
)

// BudgetStatus is a budget together with what has been spent on it.
type BudgetStatus struct {
	Budget
	Spent     decimal.Decimal `json:"spent" example:"50" swaggertype:"number"`
	Remaining decimal.Decimal `json:"remaining" example:"50" swaggertype:"number"` // Negative when over budget
	Percent   decimal.Decimal `json:"percent" example:"50" swaggertype:"number"`   // Spent in percent of the limit, not capped

	// ProgressPercent is Percent capped at 100, for progress bars.
	ProgressPercent decimal.Decimal `json:"progressPercent" example:"50" swaggertype:"number"`
	Health          Health          `json:"health" example:"normal"`
}

// UpsertBudget sets the limit of a category. An existing budget for the category is
// replaced in place.
func (s *State) UpsertBudget(b Budget) (Budget, error) {
	b.Category = strings.TrimSpace(b.Category)
	if b.Category == "" || !b.Limit.IsPositive() {
		return Budget{}, ErrInvalidBudget
	}

	i := s.budgetIndex(b.Category)
	if i < 0 {
		s.Budgets = append(s.Budgets, b)
	} else {
		s.Budgets[i] = b
	}

	return b, nil
}

func (s State) budgetIndex(category string) int {
	return slices.IndexFunc(s.Budgets, func(b Budget) bool {
		return b.Category == category
	})
}

// Budget returns the budget for a category.
func (s State) Budget(category string) (Budget, error) {
	i := s.budgetIndex(category)
	if i < 0 {
		return Budget{}, ErrBudgetNotFound
	}

	return s.Budgets[i], nil
}

// DeleteBudget removes the budget for a category. Deleting a budget
// that does not exist is not an error.
func (s *State) DeleteBudget(category string) {
	s.Budgets = slices.DeleteFunc(s.Budgets, func(b Budget) bool {
		return b.Category == category
	})
}

// SpentFor sums the expenses in a category. If month is not nil, only
// expenses in that month are counted.
func (s State) SpentFor(category string, month *types.Month) decimal.Decimal {
	return sumMagnitudes(s.Transactions, func(t Transaction) bool {
		if t.Type != Expense || t.Category != category {
			return false
		}

		return month == nil || month.Contains(t.Date)
	})
}

// Status computes how much of the budget has been spent.
func (s State) Status(b Budget, month *types.Month) BudgetStatus {
	spent := s.SpentFor(b.Category, month)
	status := BudgetStatus{
		Budget:    b,
		Spent:     spent,
		Remaining: b.Limit.Sub(spent),
		Percent:   decimal.Zero,
		Health:    HealthNormal,
	}

	if b.Limit.IsPositive() {
		status.Percent = spent.Div(b.Limit).Mul(fullPercent)
	}

	status.ProgressPercent = decimal.Min(status.Percent, fullPercent)

	if status.Percent.GreaterThan(fullPercent) {
		status.Health = HealthOverBudget
	} else if status.Percent.GreaterThan(warningPercent) {
		status.Health = HealthWarning
	}

	return status
}

// BudgetStatuses computes the status of all budgets. If month is nil,
// all expenses are counted.
func (s State) BudgetStatuses(month *types.Month) []BudgetStatus {
	result := make([]BudgetStatus, 0, len(s.Budgets))
	for _, b := range s.Budgets {
		result = append(result, s.Status(b, month))
	}
	return result
}

// TotalRemaining sums what is left of all budgets.
func TotalRemaining(statuses []BudgetStatus) decimal.Decimal {
	sum := decimal.Zero
	for _, status := range statuses {
		sum = sum.Add(status.Remaining)
	}
	return sum
}

// PayBudget records the payment of a budget as an expense of its full limit,
// attributed to the first partner.
func (s *State) PayBudget(category string, now time.Time) (Transaction, error) {
	b, err := s.Budget(category)
	if err != nil {
		return Transaction{}, err
	}

	return s.record("Pagamento: "+b.Category, b.Limit.Neg(), Expense, s.CoupleNames.Partner1, b.Category, now), nil
}
