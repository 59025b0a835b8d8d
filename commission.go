package recon

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// Editable fields of a commission row. Commission itself is not one of
// them: it is always lots times rebate, recomputed on every read.
const (
	FieldLots   = "lots"
	FieldRebate = "rebate"
)

// CommissionRow is one editable row of a group's commission ledger,
// keyed by (group, account name).
type CommissionRow struct {
	Group   string
	Account string
	Lots    decimal.Decimal
	Rebate  decimal.Decimal
}

// Commission is the derived amount of the row.
func (r CommissionRow) Commission() decimal.Decimal {
	return r.Lots.Mul(r.Rebate)
}

// CommissionLedger holds the commission rows of every group, in insertion
// order. Row indices in Remove and Update are positions within a group's
// own rows.
type CommissionLedger struct {
	rows []CommissionRow
}

func NewCommissionLedger() *CommissionLedger {
	return &CommissionLedger{rows: make([]CommissionRow, 0)}
}

// AddRow appends a zero row for the account in the group. Adding a pair
// that already exists is a silent no-op; the caller observes unchanged
// state and an unchanged total (a fresh row carries lots=0, rebate=0).
func (l *CommissionLedger) AddRow(group, account string) {
	for _, r := range l.rows {
		if r.Group == group && r.Account == account {
			return
		}
	}
	l.rows = append(l.rows, CommissionRow{Group: group, Account: account})
}

// RemoveRow removes the index-th row of the group.
func (l *CommissionLedger) RemoveRow(group string, index int) error {
	at, err := l.locate(group, index)
	if err != nil {
		return err
	}
	l.rows = append(l.rows[:at], l.rows[at+1:]...)
	return nil
}

// UpdateRow stores a normalized value into the lots or rebate field of the
// index-th row of the group. Any other field name, including an attempt to
// set the commission directly, is rejected.
func (l *CommissionLedger) UpdateRow(group string, index int, fieldName string, value any) error {
	at, err := l.locate(group, index)
	if err != nil {
		return err
	}
	switch fieldName {
	case FieldLots:
		l.rows[at].Lots = Normalize(value)
	case FieldRebate:
		l.rows[at].Rebate = Normalize(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, fieldName)
	}
	return nil
}

// locate maps a group-relative index to a position in the backing slice.
func (l *CommissionLedger) locate(group string, index int) (int, error) {
	if index < 0 {
		return 0, fmt.Errorf("%w: %d in group %q", ErrIndexOutOfRange, index, group)
	}
	n := 0
	for at, r := range l.rows {
		if r.Group != group {
			continue
		}
		if n == index {
			return at, nil
		}
		n++
	}
	return 0, fmt.Errorf("%w: %d in group %q", ErrIndexOutOfRange, index, group)
}

// Rows returns the group's rows in insertion order.
func (l *CommissionLedger) Rows(group string) []CommissionRow {
	var rows []CommissionRow
	for _, r := range l.rows {
		if r.Group == group {
			rows = append(rows, r)
		}
	}
	return rows
}

// All iterates over every row of every group in insertion order.
func (l *CommissionLedger) All() iter.Seq[CommissionRow] {
	return func(yield func(CommissionRow) bool) {
		for _, r := range l.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// TotalCommission sums lots times rebate over the group's rows. A group
// with no rows totals zero.
func (l *CommissionLedger) TotalCommission(group string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range l.rows {
		if r.Group == group {
			total = total.Add(r.Commission())
		}
	}
	return total
}

// Candidates lists the account names that may still be added as rows of the
// group: accounts currently mapped to the group through the join and not
// already present. It is re-derived on every call so it never serves a
// stale universe.
func (l *CommissionLedger) Candidates(group string, accounts []Account, groups []Group) []string {
	present := make(map[string]struct{})
	for _, r := range l.rows {
		if r.Group == group {
			present[r.Account] = struct{}{}
		}
	}
	var names []string
	seen := make(map[string]struct{})
	for _, a := range accounts {
		g := findGroup(groups, a.Login)
		if g == nil || g.GroupName != group {
			continue
		}
		if _, ok := present[a.Name]; ok {
			continue
		}
		if _, ok := seen[a.Name]; ok {
			continue
		}
		seen[a.Name] = struct{}{}
		names = append(names, a.Name)
	}
	return names
}
