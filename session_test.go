package recon

import (
	"errors"
	"slices"
	"testing"
)

// A net of 367 plus a 20 commission books as a 387 profit.
func TestSession_ConfirmBooksProfit(t *testing.T) {
	s := newTestSession(t)
	s.Select("G1")
	if err := s.AddCommissionRow("Alice"); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateCommissionRow(0, FieldLots, 10); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateCommissionRow(0, FieldRebate, 2); err != nil {
		t.Fatal(err)
	}

	if got := s.BookTotal("G1"); got.String() != "387" {
		t.Fatalf("BookTotal(G1) = %s, want 387", got)
	}
	if err := s.Confirm(); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	entry, ok := s.Book().Entry("G1")
	if !ok {
		t.Fatal("no book entry for G1 after Confirm")
	}
	if entry.Amount.String() != "387" || entry.Kind != Profit {
		t.Errorf("entry = {%s %s}, want {387 profit}", entry.Amount, entry.Kind)
	}
	if !slices.Equal(s.ConfirmedGroups(), []string{"G1"}) {
		t.Errorf("confirmedGroups = %v, want [G1]", s.ConfirmedGroups())
	}
}

// Editing a confirmed group's rebate moves the book total and silently
// unconfirms the group; the stale entry stays at 387.
func TestSession_EditInvalidatesConfirmation(t *testing.T) {
	s := newTestSession(t)
	s.Select("G1")
	s.AddCommissionRow("Alice")
	s.UpdateCommissionRow(0, FieldLots, 10)
	s.UpdateCommissionRow(0, FieldRebate, 2)
	if err := s.Confirm(); err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateCommissionRow(0, FieldRebate, 3); err != nil {
		t.Fatalf("rows of a confirmed group must stay editable: %v", err)
	}

	if got := s.TotalCommission("G1"); got.String() != "30" {
		t.Errorf("TotalCommission(G1) = %s, want 30", got)
	}
	if got := s.BookTotal("G1"); got.String() != "397" {
		t.Errorf("BookTotal(G1) = %s, want 397", got)
	}
	if s.IsConfirmed("G1") {
		t.Error("G1 still confirmed after its book total changed")
	}
	entry, ok := s.Book().Entry("G1")
	if !ok || entry.Amount.String() != "387" {
		t.Errorf("stale entry = %v %v, want preserved amount 387", entry, ok)
	}
}

// Confirming twice with an unchanged total keeps exactly one entry.
func TestSession_ConfirmIdempotent(t *testing.T) {
	s := newTestSession(t)
	s.Select("G1")
	if err := s.Confirm(); err != nil {
		t.Fatal(err)
	}
	first, _ := s.Book().Entry("G1")

	if err := s.Confirm(); err != nil {
		t.Fatal(err)
	}
	if s.Book().Len() != 1 {
		t.Errorf("book has %d entries for one group, want 1", s.Book().Len())
	}
	second, _ := s.Book().Entry("G1")
	if !second.Amount.Equal(first.Amount) || second.Kind != first.Kind {
		t.Errorf("re-confirm changed the entry from %v to %v", first, second)
	}
	if !s.IsConfirmed("G1") {
		t.Error("G1 not confirmed after idempotent re-confirm")
	}
}

// Changing the conversion rate unconfirms a group iff its book total moved.
func TestSession_RateChangeInvalidation(t *testing.T) {
	s := NewSession()
	s.Load(
		[]Account{acc("100", "Alice", 1000, 800)},
		[]Group{grp("100", "G1", 50), grp("999", "G2", 10)},
	)

	// G2 maps no accounts: its book total is pure commission, rate immune.
	s.Select("G2")
	s.AddCommissionRow("Ghost")
	s.UpdateCommissionRow(0, FieldLots, 3)
	s.UpdateCommissionRow(0, FieldRebate, 5)
	if err := s.Confirm(); err != nil {
		t.Fatal(err)
	}

	s.Select("G1")
	if err := s.Confirm(); err != nil {
		t.Fatal(err)
	}

	s.SetConversionRate(2)

	if s.IsConfirmed("G1") {
		t.Error("G1 stayed confirmed although its book total changed with the rate")
	}
	if !s.IsConfirmed("G2") {
		t.Error("G2 lost confirmation although its book total did not change")
	}
}

// A loss books with its magnitude and the Loss kind.
func TestSession_ConfirmBooksLoss(t *testing.T) {
	s := NewSession()
	s.Load(
		[]Account{acc("100", "Alice", 800, 1000)},
		[]Group{grp("100", "G1", 50)},
	)
	s.Select("G1")
	if err := s.Confirm(); err != nil {
		t.Fatal(err)
	}
	entry, _ := s.Book().Entry("G1")
	if entry.Kind != Loss {
		t.Errorf("kind = %s, want loss", entry.Kind)
	}
	if entry.Amount.IsNegative() {
		t.Errorf("amount = %s, must be a magnitude", entry.Amount)
	}
	if !entry.Signed().Equal(s.BookTotal("G1")) {
		t.Errorf("Signed() = %s, want %s", entry.Signed(), s.BookTotal("G1"))
	}
}

// The grand total folds in the carry-forward balance and the selected
// group's commission.
func TestSession_GrandTotal(t *testing.T) {
	s := newTestSession(t)
	s.Select("G1")
	s.AddCommissionRow("Alice")
	s.UpdateCommissionRow(0, FieldLots, 10)
	s.UpdateCommissionRow(0, FieldRebate, 2)
	s.SetCarryForward(50)

	// totals over the G1 selection: net 367; +50 carry; +20 commission
	if got := s.GrandTotal(); got.String() != "437" {
		t.Errorf("GrandTotal = %s, want 437", got)
	}

	// without a selected group the commission term drops out
	s.Select("")
	want := s.Totals().NetAfterPartner.Add(D("50"))
	if got := s.GrandTotal(); !got.Equal(want) {
		t.Errorf("GrandTotal = %s, want %s", got, want)
	}
}

func TestSession_OperationsRequireSelectedGroup(t *testing.T) {
	s := newTestSession(t)

	testCases := []struct {
		name string
		call func() error
	}{
		{"confirm", func() error { return s.Confirm() }},
		{"unconfirm", func() error { return s.Unconfirm() }},
		{"add row", func() error { return s.AddCommissionRow("Alice") }},
		{"remove row", func() error { return s.RemoveCommissionRow(0) }},
		{"update row", func() error { return s.UpdateCommissionRow(0, FieldLots, 1) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, ErrNoGroupSelected) {
				t.Errorf("got %v, want ErrNoGroupSelected", err)
			}
		})
	}
	if s.Book().Len() != 0 || len(s.ConfirmedGroups()) != 0 {
		t.Error("failed operations mutated state")
	}
}

// Loading a new dataset starts a new report.
func TestSession_LoadResetsState(t *testing.T) {
	s := newTestSession(t)
	s.Select("G1")
	s.AddCommissionRow("Alice")
	s.SetCarryForward(50)
	s.SetConversionRate("2.5")
	s.Confirm()

	s.Load([]Account{acc("1", "X", 1, 0)}, nil)

	if got := s.ConversionRate(); !got.Equal(DefaultConversionRate) {
		t.Errorf("rate = %s, want default", got)
	}
	if !s.CarryForward().IsZero() {
		t.Errorf("carry = %s, want 0", s.CarryForward())
	}
	if s.SelectedGroup() != "" {
		t.Errorf("selectedGroup = %q, want none", s.SelectedGroup())
	}
	if s.Book().Len() != 0 || len(s.ConfirmedGroups()) != 0 || len(s.CommissionRows("G1")) != 0 {
		t.Error("ledger state survived a dataset reload")
	}
}

func TestSession_SetConversionRateGuardsInvariant(t *testing.T) {
	s := NewSession()
	for _, v := range []any{0, -1, "garbage", ""} {
		s.SetConversionRate(v)
		if got := s.ConversionRate(); !got.Equal(DefaultConversionRate) {
			t.Errorf("rate after SetConversionRate(%v) = %s, want default", v, got)
		}
	}
	s.SetConversionRate("3.6725")
	if got := s.ConversionRate(); got.String() != "3.6725" {
		t.Errorf("rate = %s, want 3.6725", got)
	}
}

func TestSession_UnconfirmKeepsEntry(t *testing.T) {
	s := newTestSession(t)
	s.Select("G1")
	s.Confirm()
	if err := s.Unconfirm(); err != nil {
		t.Fatal(err)
	}
	if s.IsConfirmed("G1") {
		t.Error("G1 still confirmed after Unconfirm")
	}
	if _, ok := s.Book().Entry("G1"); !ok {
		t.Error("Unconfirm deleted the book entry; it must stay as history")
	}

	if !s.ClearEntry("G1") {
		t.Error("ClearEntry found no entry")
	}
	if _, ok := s.Book().Entry("G1"); ok {
		t.Error("entry survived ClearEntry")
	}
}

func TestSession_CandidatesFollowUniverse(t *testing.T) {
	s := newTestSession(t)
	s.Select("G1")
	if got := s.CommissionCandidates("G1"); !slices.Equal(got, []string{"Alice"}) {
		t.Fatalf("candidates = %v, want [Alice]", got)
	}
	s.AddCommissionRow("Alice")
	if got := s.CommissionCandidates("G1"); len(got) != 0 {
		t.Errorf("candidates = %v, want none once the row exists", got)
	}
}
