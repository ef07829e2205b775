package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Mood describes how the finances feel.
type Mood struct {
	Emoji       string `json:"emoji" example:"😐"`
	Description string `json:"description" example:"Neutro (o dinheiro está estagnado)"`
}

// DefaultMood is used for journal entries without a mood.
const DefaultMood = "😐"

// Moods are all moods a journal entry can have.
var Moods = []Mood{
	{"😁", "Esperançoso (mas ainda com medo)"},
	{"😐", "Neutro (o dinheiro está estagnado)"},
	{"😬", "Preocupado (o boleto está chamando)"},
	{"😭", "Desesperado (o banco ligou)"},
	{"😡", "Revoltado (alguém gastou demais)"},
	{"🥳", "Feliz (achou dinheiro na rua)"},
	{"🫠", "Derretendo (as dívidas estão demais)"},
}

func knownMood(emoji string) bool {
	return slices.ContainsFunc(Moods, func(m Mood) bool {
		return m.Emoji == emoji
	})
}

// JournalEntry is a note on how the couple feels about their money.
type JournalEntry struct {
	ID   uuid.UUID `json:"id" example:"4e7b1f0a-2d1c-4c53-8a51-7e2f0c9b6d11"`
	Text string    `json:"text" example:"Achamos 20 reais no casaco de inverno."`
	Mood string    `json:"mood" example:"🥳"`
	Date time.Time `json:"date" example:"2024-05-12T17:59:23.491514Z"`
}

// AddJournalEntry writes a new journal entry.
func (s *State) AddJournalEntry(text, mood string, now time.Time) (JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return JournalEntry{}, ErrEmptyJournalEntry
	}

	if mood == "" {
		mood = DefaultMood
	}

	if !knownMood(mood) {
		return JournalEntry{}, ErrUnknownMood
	}

	entry := JournalEntry{
		ID:   uuid.New(),
		Text: text,
		Mood: mood,
		Date: now,
	}

	s.JournalEntries = append(s.JournalEntries, entry)
	return entry, nil
}

// DeleteJournalEntry removes a journal entry.
func (s *State) DeleteJournalEntry(id uuid.UUID) error {
	i := slices.IndexFunc(s.JournalEntries, func(e JournalEntry) bool {
		return e.ID == id
	})

	if i < 0 {
		return ErrJournalEntryNotFound
	}

	s.JournalEntries = slices.Delete(s.JournalEntries, i, i+1)
	return nil
}

// SetCoupleNames renames the partners.
//
// Transactions keep the name of the partner at the time they were recorded.
func (s *State) SetCoupleNames(names CoupleNames) (CoupleNames, error) {
	names.Partner1 = strings.TrimSpace(names.Partner1)
	names.Partner2 = strings.TrimSpace(names.Partner2)

	if names.Partner1 == "" || names.Partner2 == "" {
		return CoupleNames{}, ErrInvalidCoupleNames
	}

	s.CoupleNames = names
	return names, nil
}
