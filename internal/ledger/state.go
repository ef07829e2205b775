// Package ledger implements the shared finances of a couple: transactions and the running
// balance, budgets, savings goals, the dinner roulette and the mood journal.
//
// All of it lives in a single State value. The methods on *State validate their input and
// either apply the mutation completely or return an error and leave the State untouched.
// Persistence is not a concern of this package, see Service.
package ledger

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

func init() {
	// Amounts are stored as JSON numbers, which the snapshots have always used.
	decimal.MarshalJSONWithoutQuotes = true
}

// SnapshotKey is the key the State is persisted under.
const SnapshotKey = "sarcasticFinanceAppCouple"

// CoupleNames are the labels of both partners.
type CoupleNames struct {
	Partner1 string `json:"partner1" example:"Alice"`
	Partner2 string `json:"partner2" example:"Bruno"`
}

// State is everything the couple keeps track of.
type State struct {
	CoupleNames     CoupleNames     `json:"coupleNames"`
	Balance         decimal.Decimal `json:"balance"`
	Transactions    []Transaction   `json:"transactions"`
	Goals           []Goal          `json:"goals"`
	Budgets         []Budget        `json:"budgets"`
	RouletteOptions []string        `json:"rouletteOptions"`
	JournalEntries  []JournalEntry  `json:"journalEntries"`
}

// DefaultRouletteOptions are the options a new roulette starts with.
var DefaultRouletteOptions = []string{
	"Pizza",
	"Comida Caseira",
	"Delivery Econômico",
	"Miojo Gourmet",
	"Sobras da Geladeira",
	"Jantar Chique (só na imaginação)",
}

// Default returns the State of a couple that has not recorded anything yet.
func Default() State {
	return State{
		CoupleNames: CoupleNames{
			Partner1: "Pessoa 1",
			Partner2: "Pessoa 2",
		},
		Balance:         decimal.Zero,
		Transactions:    []Transaction{},
		Goals:           []Goal{},
		Budgets:         []Budget{},
		RouletteOptions: slices.Clone(DefaultRouletteOptions),
		JournalEntries:  []JournalEntry{},
	}
}

// Clone returns a deep copy of s.
func Clone(s State) State {
	s.Transactions = slices.Clone(s.Transactions)
	s.Goals = slices.Clone(s.Goals)
	s.Budgets = slices.Clone(s.Budgets)
	s.RouletteOptions = slices.Clone(s.RouletteOptions)
	s.JournalEntries = slices.Clone(s.JournalEntries)
	return s
}

// UnmarshalJSON decodes a snapshot. Fields missing from the snapshot keep their defaults.
func (s *State) UnmarshalJSON(data []byte) error {
	type plain State
	v := plain(Default())

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if v.Transactions == nil {
		v.Transactions = []Transaction{}
	}
	if v.Goals == nil {
		v.Goals = []Goal{}
	}
	if v.Budgets == nil {
		v.Budgets = []Budget{}
	}
	if v.RouletteOptions == nil {
		v.RouletteOptions = []string{}
	}
	if v.JournalEntries == nil {
		v.JournalEntries = []JournalEntry{}
	}

	*s = State(v)
	return nil
}
