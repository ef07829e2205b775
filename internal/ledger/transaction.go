package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/couplefin/backend/internal/types"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// DefaultCategory is used for transactions without a category.
const DefaultCategory = "Outros"

type TransactionType string

const (
	Expense TransactionType = "expense"
	Revenue TransactionType = "revenue"
)

// Valid reports if the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Expense || t == Revenue
}

// Transaction is a single expense or revenue.
//
// Amount carries the sign of the type, expenses are negative.
type Transaction struct {
	ID                 uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Description        string          `json:"description" example:"Pizza"`
	Amount             decimal.Decimal `json:"amount" example:"-50" swaggertype:"number"`
	Type               TransactionType `json:"type" example:"expense"`
	Date               time.Time       `json:"date" example:"2024-05-12T17:59:23.491514Z"`
	ResponsiblePartner string          `json:"responsiblePartner" example:"Alice"`
	Category           string          `json:"category" example:"Alimentação"`
}

// Magnitude is the absolute amount of the transaction.
func (t Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}

// AddTransaction records a transaction and moves the balance by its signed amount.
//
// rawAmount is the number of cents as typed into a currency input.
func (s *State) AddTransaction(description, rawAmount string, transactionType TransactionType, responsiblePartner, category string, now time.Time) (Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" || !transactionType.Valid() {
		return Transaction{}, ErrInvalidTransaction
	}

	amount, err := ParseRawAmount(rawAmount)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	responsiblePartner = strings.TrimSpace(responsiblePartner)
	if responsiblePartner == "" {
		return Transaction{}, ErrMissingPartner
	}

	if transactionType == Expense {
		amount = amount.Neg()
	}

	return s.record(description, amount, transactionType, responsiblePartner, category, now), nil
}

// record appends a validated transaction.
func (s *State) record(description string, amount decimal.Decimal, transactionType TransactionType, responsiblePartner, category string, now time.Time) Transaction {
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}

	t := Transaction{
		ID:                 uuid.New(),
		Description:        description,
		Amount:             amount,
		Type:               transactionType,
		Date:               now,
		ResponsiblePartner: responsiblePartner,
		Category:           category,
	}

	s.Transactions = append(s.Transactions, t)
	s.Balance = s.Balance.Add(amount)
	return t
}

// Transaction returns the transaction with the given ID.
func (s State) Transaction(id uuid.UUID) (Transaction, error) {
	i := s.transactionIndex(id)
	if i < 0 {
		return Transaction{}, ErrTransactionNotFound
	}

	return s.Transactions[i], nil
}

func (s State) transactionIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.Transactions, func(t Transaction) bool {
		return t.ID == id
	})
}

// DeleteTransaction removes a transaction and subtracts its stored amount from the balance.
//
// If amount is not nil, it must equal the signed amount of the transaction.
func (s *State) DeleteTransaction(id uuid.UUID, amount *decimal.Decimal) (Transaction, error) {
	i := s.transactionIndex(id)
	if i < 0 {
		return Transaction{}, ErrTransactionNotFound
	}

	t := s.Transactions[i]
	if amount != nil && !amount.Equal(t.Amount) {
		return Transaction{}, fmt.Errorf("%w: expected %s, got %s", ErrAmountMismatch, t.Amount, amount)
	}

	s.Transactions = slices.Delete(s.Transactions, i, i+1)
	s.Balance = s.Balance.Sub(t.Amount)
	return t, nil
}

// TotalRevenue is the sum of all revenues.
func (s State) TotalRevenue() decimal.Decimal {
	return sumMagnitudes(s.Transactions, func(t Transaction) bool { return t.Type == Revenue })
}

// TotalExpense is the sum of the magnitudes of all expenses.
func (s State) TotalExpense() decimal.Decimal {
	return sumMagnitudes(s.Transactions, func(t Transaction) bool { return t.Type == Expense })
}

func sumMagnitudes(transactions []Transaction, match func(Transaction) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		if match(t) {
			sum = sum.Add(t.Magnitude())
		}
	}
	return sum
}

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Alimentação"`
	Amount   decimal.Decimal `json:"amount" example:"50" swaggertype:"number"`
}

// ExpensesByCategory sums the expenses per category, largest first.
// Categories with the same total are sorted by name.
func (s State) ExpensesByCategory() []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	for _, t := range s.Transactions {
		if t.Type != Expense {
			continue
		}

		totals[t.Category] = totals[t.Category].Add(t.Magnitude())
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		result = append(result, CategoryTotal{Category: category, Amount: amount})
	}

	slices.SortFunc(result, func(a, b CategoryTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})

	return result
}

// TransactionFilter selects transactions. Zero values match everything.
type TransactionFilter struct {
	Type     TransactionType
	Partner  string
	Category string
	Month    types.Month

	// Description is a glob pattern, e.g. "*pizza*". Matching ignores case.
	Description string
}

func (f TransactionFilter) matches(t Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}

	if f.Partner != "" && t.ResponsiblePartner != f.Partner {
		return false
	}

	if f.Category != "" && t.Category != f.Category {
		return false
	}

	if !f.Month.IsZero() && !f.Month.Contains(t.Date) {
		return false
	}

	if f.Description != "" && !glob.Glob(strings.ToLower(f.Description), strings.ToLower(t.Description)) {
		return false
	}

	return true
}

// FilterTransactions returns the transactions matching the filter in the order
// they were recorded.
func (s State) FilterTransactions(filter TransactionFilter) []Transaction {
	result := []Transaction{}
	for _, t := range s.Transactions {
		if filter.matches(t) {
			result = append(result, t)
		}
	}
	return result
}
