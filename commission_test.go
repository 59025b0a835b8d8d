package recon

import (
	"errors"
	"slices"
	"testing"
)

// 10 lots at rebate 2 is a 20 commission.
func TestCommissionLedger_Total(t *testing.T) {
	l := NewCommissionLedger()
	l.AddRow("G1", "Alice")
	if err := l.UpdateRow("G1", 0, FieldLots, 10); err != nil {
		t.Fatalf("UpdateRow(lots) failed: %v", err)
	}
	if err := l.UpdateRow("G1", 0, FieldRebate, "2"); err != nil {
		t.Fatalf("UpdateRow(rebate) failed: %v", err)
	}

	if got := l.Rows("G1")[0].Commission(); got.String() != "20" {
		t.Errorf("Commission() = %s, want 20", got)
	}
	if got := l.TotalCommission("G1"); got.String() != "20" {
		t.Errorf("TotalCommission(G1) = %s, want 20", got)
	}
}

func TestCommissionLedger_DuplicateAddIsNoOp(t *testing.T) {
	l := NewCommissionLedger()
	l.AddRow("G1", "Alice")
	if err := l.UpdateRow("G1", 0, FieldLots, 5); err != nil {
		t.Fatal(err)
	}

	l.AddRow("G1", "Alice") // must not reset or duplicate

	rows := l.Rows("G1")
	if len(rows) != 1 {
		t.Fatalf("duplicate AddRow produced %d rows, want 1", len(rows))
	}
	if rows[0].Lots.String() != "5" {
		t.Errorf("duplicate AddRow changed lots to %s, want 5", rows[0].Lots)
	}
}

// A fresh row carries lots=0, rebate=0: adding it never changes the total.
func TestCommissionLedger_ZeroRowKeepsTotal(t *testing.T) {
	l := NewCommissionLedger()
	l.AddRow("G1", "Alice")
	l.UpdateRow("G1", 0, FieldLots, 10)
	l.UpdateRow("G1", 0, FieldRebate, 2)

	before := l.TotalCommission("G1")
	l.AddRow("G1", "Bob")
	if after := l.TotalCommission("G1"); !after.Equal(before) {
		t.Errorf("adding a zero row changed total from %s to %s", before, after)
	}
}

func TestCommissionLedger_IndexErrors(t *testing.T) {
	l := NewCommissionLedger()
	l.AddRow("G1", "Alice")

	testCases := []struct {
		name string
		call func() error
	}{
		{"remove negative", func() error { return l.RemoveRow("G1", -1) }},
		{"remove past end", func() error { return l.RemoveRow("G1", 1) }},
		{"remove other group", func() error { return l.RemoveRow("G2", 0) }},
		{"update past end", func() error { return l.UpdateRow("G1", 3, FieldLots, 1) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("got %v, want ErrIndexOutOfRange", err)
			}
			// ledger state must be intact
			if len(l.Rows("G1")) != 1 {
				t.Errorf("failed operation corrupted the ledger")
			}
		})
	}
}

// Commission is derived, never settable, even when a caller tries.
func TestCommissionLedger_CommissionNotSettable(t *testing.T) {
	l := NewCommissionLedger()
	l.AddRow("G1", "Alice")
	l.UpdateRow("G1", 0, FieldLots, 10)
	l.UpdateRow("G1", 0, FieldRebate, 2)

	if err := l.UpdateRow("G1", 0, "commission", 999); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("got %v, want ErrUnknownField", err)
	}
	if got := l.TotalCommission("G1"); got.String() != "20" {
		t.Errorf("total moved to %s after rejected update, want 20", got)
	}
}

// Malformed edits normalize to zero rather than failing.
func TestCommissionLedger_UpdateNormalizesValue(t *testing.T) {
	l := NewCommissionLedger()
	l.AddRow("G1", "Alice")
	l.UpdateRow("G1", 0, FieldLots, 10)
	l.UpdateRow("G1", 0, FieldRebate, 2)

	if err := l.UpdateRow("G1", 0, FieldLots, "not a number"); err != nil {
		t.Fatalf("UpdateRow with malformed value failed: %v", err)
	}
	if got := l.TotalCommission("G1"); !got.IsZero() {
		t.Errorf("TotalCommission = %s, want 0 after lots normalized to zero", got)
	}
}

func TestCommissionLedger_RemoveByPosition(t *testing.T) {
	l := NewCommissionLedger()
	l.AddRow("G1", "Alice")
	l.AddRow("G2", "Eve")
	l.AddRow("G1", "Bob")

	// index 1 within G1 is Bob, G2 rows do not shift positions
	if err := l.RemoveRow("G1", 1); err != nil {
		t.Fatalf("RemoveRow failed: %v", err)
	}
	if rows := l.Rows("G1"); len(rows) != 1 || rows[0].Account != "Alice" {
		t.Errorf("G1 rows = %v, want only Alice", rows)
	}
	if rows := l.Rows("G2"); len(rows) != 1 {
		t.Errorf("removing from G1 disturbed G2")
	}
}

func TestCommissionLedger_Candidates(t *testing.T) {
	accounts, groups := fixtureAccounts()
	l := NewCommissionLedger()

	if got := l.Candidates("G1", accounts, groups); !slices.Equal(got, []string{"Alice", "Bob"}) {
		t.Fatalf("Candidates(G1) = %v, want [Alice Bob]", got)
	}

	// a present row leaves the candidate set on the next read
	l.AddRow("G1", "Alice")
	if got := l.Candidates("G1", accounts, groups); !slices.Equal(got, []string{"Bob"}) {
		t.Errorf("Candidates(G1) = %v, want [Bob]", got)
	}

	if got := l.Candidates("G3", accounts, groups); got != nil {
		t.Errorf("Candidates(G3) = %v, want none", got)
	}
}

func TestCommissionLedger_EmptyGroupTotalsZero(t *testing.T) {
	l := NewCommissionLedger()
	if got := l.TotalCommission("nowhere"); !got.IsZero() {
		t.Errorf("TotalCommission on empty group = %s, want 0", got)
	}
}
