package ledger

import "errors"

var (
	ErrInvalidAmount        = errors.New("the amount must be a positive number of cents")
	ErrInvalidTransaction   = errors.New("missing or invalid fields: a transaction needs a description, a positive amount and a type of expense or revenue")
	ErrMissingPartner       = errors.New("missing responsible partner: who is to blame for this transaction?")
	ErrAmountMismatch       = errors.New("the amount does not match the amount of the transaction")
	ErrTransactionNotFound  = errors.New("there is no transaction with this ID")
	ErrInvalidBudget        = errors.New("a budget needs a category and a positive limit")
	ErrBudgetNotFound       = errors.New("there is no budget for this category")
	ErrInvalidGoal          = errors.New("a goal needs a name and a positive target amount")
	ErrGoalNotFound         = errors.New("there is no goal with this ID")
	ErrInvalidContribution  = errors.New("the contribution must be a positive amount")
	ErrInsufficientBalance  = errors.New("insufficient balance for this contribution")
	ErrEmptyOption          = errors.New("the option must not be empty")
	ErrDuplicateOption      = errors.New("this option is already on the roulette")
	ErrNoOptions            = errors.New("no options: add something to the roulette first")
	ErrEmptyJournalEntry    = errors.New("the journal entry must not be empty")
	ErrUnknownMood          = errors.New("unknown mood")
	ErrJournalEntryNotFound = errors.New("there is no journal entry with this ID")
	ErrInvalidCoupleNames   = errors.New("both partners need a name")
)
