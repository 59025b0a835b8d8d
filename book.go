package recon

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// EntryKind tells whether a book entry records a profit or a loss.
type EntryKind int

const (
	Profit EntryKind = iota
	Loss
)

func (k EntryKind) String() string {
	switch k {
	case Profit:
		return "profit"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// ParseEntryKind parses a string into an EntryKind.
func ParseEntryKind(s string) (EntryKind, error) {
	switch s {
	case "profit":
		return Profit, nil
	case "loss":
		return Loss, nil
	default:
		return 0, fmt.Errorf("unknown book entry kind: %q", s)
	}
}

// BookEntry freezes a group's book total at confirmation time: the total's
// magnitude and whether it was a profit or a loss.
type BookEntry struct {
	Group  string
	Amount decimal.Decimal // magnitude, never negative
	Kind   EntryKind
}

// Signed returns the entry amount with the sign its kind implies.
func (e BookEntry) Signed() decimal.Decimal {
	if e.Kind == Loss {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Book is the cross-group ledger of confirmed Profit/Loss entries. It holds
// at most one entry per group at any time.
type Book struct {
	entries []BookEntry
}

func NewBook() *Book {
	return &Book{entries: make([]BookEntry, 0)}
}

// Entry returns the group's entry, or false when none was ever confirmed.
func (b *Book) Entry(group string) (BookEntry, bool) {
	for _, e := range b.entries {
		if e.Group == group {
			return e, true
		}
	}
	return BookEntry{}, false
}

// Put replaces the group's entry, or appends it. This is the only way an
// entry is created, so one entry per group holds by construction.
func (b *Book) Put(entry BookEntry) {
	for i, e := range b.entries {
		if e.Group == entry.Group {
			b.entries[i] = entry
			return
		}
	}
	b.entries = append(b.entries, entry)
}

// Clear removes the group's entry, reporting whether one existed.
func (b *Book) Clear(group string) bool {
	for i, e := range b.entries {
		if e.Group == group {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries iterates over the book in confirmation order.
func (b *Book) Entries() iter.Seq[BookEntry] {
	return func(yield func(BookEntry) bool) {
		for _, e := range b.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of entries in the book.
func (b *Book) Len() int { return len(b.entries) }
