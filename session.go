package recon

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultConversionRate is the statement-to-local conversion applied when
// none is set. 3.67 is the USD/AED peg.
var DefaultConversionRate = decimal.NewFromFloat(3.67)

// Session is the explicit state object of one report: the ingested
// snapshots, the conversion rate, the filters, the commission ledger, the
// book and the confirmed set. There is no hidden module-level state.
//
// Every mutation triggers a full recompute of derived state from the base
// snapshots before any further read. The session is single threaded; all
// derived reads are pure functions of the current state.
type Session struct {
	accounts []Account
	groups   []Group

	rate      decimal.Decimal
	carry     decimal.Decimal
	selection Selection

	ledger    *CommissionLedger
	book      *Book
	confirmed map[string]struct{}
}

// NewSession creates an empty session with the default conversion rate.
func NewSession() *Session {
	return &Session{
		rate:      DefaultConversionRate,
		ledger:    NewCommissionLedger(),
		book:      NewBook(),
		confirmed: make(map[string]struct{}),
	}
}

// Load replaces the account and group snapshots. Loading a new dataset
// starts a new report: rate, carry-forward, filters, commission rows, book
// and confirmations all reset.
func (s *Session) Load(accounts []Account, groups []Group) {
	s.accounts = slices.Clone(accounts)
	s.groups = slices.Clone(groups)
	s.rate = DefaultConversionRate
	s.carry = decimal.Zero
	s.selection = Selection{}
	s.ledger = NewCommissionLedger()
	s.book = NewBook()
	s.confirmed = make(map[string]struct{})
	s.recompute()
}

// Accounts returns the current account snapshot.
func (s *Session) Accounts() []Account { return s.accounts }

// Groups returns the current group snapshot.
func (s *Session) Groups() []Group { return s.groups }

// GroupNames returns the distinct group names of the mapping table, in
// input order.
func (s *Session) GroupNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, g := range s.groups {
		if _, ok := seen[g.GroupName]; ok {
			continue
		}
		seen[g.GroupName] = struct{}{}
		names = append(names, g.GroupName)
	}
	return names
}

// SetConversionRate normalizes and stores the conversion rate. A
// non-positive or malformed value falls back to the default rate, keeping
// the rate invariant intact without failing the report.
func (s *Session) SetConversionRate(v any) {
	rate := Normalize(v)
	if !rate.IsPositive() {
		rate = DefaultConversionRate
	}
	s.rate = rate
	s.recompute()
}

// ConversionRate returns the current conversion rate.
func (s *Session) ConversionRate() decimal.Decimal { return s.rate }

// SetCarryForward normalizes and stores the prior-period balance folded
// into the grand total.
func (s *Session) SetCarryForward(v any) {
	s.carry = Normalize(v)
	s.recompute()
}

// CarryForward returns the current carry-forward balance.
func (s *Session) CarryForward() decimal.Decimal { return s.carry }

// Select sets the selected group. An empty name clears the selection.
func (s *Session) Select(group string) {
	s.selection.Group = group
	s.recompute()
}

// SelectedGroup returns the selected group name, or "".
func (s *Session) SelectedGroup() string { return s.selection.Group }

// FilterNames restricts the account universe to the given names. No names
// clears the filter.
func (s *Session) FilterNames(names ...string) {
	if len(names) == 0 {
		s.selection.Names = nil
	} else {
		s.selection.Names = SelectNames(names...).Names
	}
	s.recompute()
}

// FilteredNames returns the active name filter, sorted, or nil when no
// filter is set.
func (s *Session) FilteredNames() []string {
	if len(s.selection.Names) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.selection.Names))
	for n := range s.selection.Names {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Enriched yields the enriched accounts passing the current selection.
func (s *Session) Enriched() iter.Seq[EnrichedAccount] {
	return Filter(Enrich(s.accounts, s.groups, s.rate), s.groups, s.selection)
}

// Totals sums the derived columns over the current selection.
func (s *Session) Totals() Totals {
	return Sum(s.Enriched())
}

// AddCommissionRow appends a zero commission row for the account in the
// selected group. Duplicate pairs are a silent no-op.
func (s *Session) AddCommissionRow(account string) error {
	if s.selection.Group == "" {
		return ErrNoGroupSelected
	}
	s.ledger.AddRow(s.selection.Group, account)
	s.recompute()
	return nil
}

// RemoveCommissionRow removes the index-th row of the selected group.
func (s *Session) RemoveCommissionRow(index int) error {
	if s.selection.Group == "" {
		return ErrNoGroupSelected
	}
	if err := s.ledger.RemoveRow(s.selection.Group, index); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// UpdateCommissionRow updates the lots or rebate of the index-th row of the
// selected group. Rows stay editable while the group is confirmed; the
// recompute silently unconfirms the group when its book total moves.
func (s *Session) UpdateCommissionRow(index int, fieldName string, value any) error {
	if s.selection.Group == "" {
		return ErrNoGroupSelected
	}
	if err := s.ledger.UpdateRow(s.selection.Group, index, fieldName, value); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// CommissionRows returns the rows of a group.
func (s *Session) CommissionRows(group string) []CommissionRow {
	return s.ledger.Rows(group)
}

// TotalCommission returns a group's commission total.
func (s *Session) TotalCommission(group string) decimal.Decimal {
	return s.ledger.TotalCommission(group)
}

// CommissionCandidates lists account names that can still become rows of
// the group. Re-derived on every call.
func (s *Session) CommissionCandidates(group string) []string {
	return s.ledger.Candidates(group, s.accounts, s.groups)
}

// BookTotal is the figure Confirm freezes: the net-after-partner total of
// the accounts currently filtered to the group, plus the group's commission
// total. The group membership is re-derived through the join; the session's
// own selected group does not interfere.
func (s *Session) BookTotal(group string) decimal.Decimal {
	sel := Selection{Names: s.selection.Names, Group: group}
	totals := Sum(Filter(Enrich(s.accounts, s.groups, s.rate), s.groups, sel))
	return totals.NetAfterPartner.Add(s.ledger.TotalCommission(group))
}

// Confirm freezes the selected group's current book total into the book:
// the entry records the total's magnitude and its sign as Profit or Loss,
// and the group joins the confirmed set. Confirming again with an unchanged
// total replaces the entry with an identical one.
func (s *Session) Confirm() error {
	group := s.selection.Group
	if group == "" {
		return ErrNoGroupSelected
	}
	total := s.BookTotal(group)
	kind := Profit
	if total.IsNegative() {
		kind = Loss
	}
	s.book.Put(BookEntry{Group: group, Amount: total.Abs(), Kind: kind})
	s.confirmed[group] = struct{}{}
	s.recompute()
	return nil
}

// Unconfirm removes the selected group from the confirmed set. The book
// entry stays behind as a historical artifact, exactly as if the group had
// been invalidated.
func (s *Session) Unconfirm() error {
	if s.selection.Group == "" {
		return ErrNoGroupSelected
	}
	delete(s.confirmed, s.selection.Group)
	return nil
}

// ClearEntry drops a group's book entry and its confirmation, reporting
// whether an entry existed.
func (s *Session) ClearEntry(group string) bool {
	delete(s.confirmed, group)
	return s.book.Clear(group)
}

// Book returns the cross-group ledger of confirmed entries.
func (s *Session) Book() *Book { return s.book }

// IsConfirmed reports whether the group is currently confirmed.
func (s *Session) IsConfirmed(group string) bool {
	_, ok := s.confirmed[group]
	return ok
}

// ConfirmedGroups returns the confirmed group names, sorted. It returns
// nil rather than an empty slice when nothing is confirmed, so the encoder
// can omit the field.
func (s *Session) ConfirmedGroups() []string {
	if len(s.confirmed) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.confirmed))
	for g := range s.confirmed {
		names = append(names, g)
	}
	slices.Sort(names)
	return names
}

// GrandTotal combines the selection totals, the carry-forward balance and
// the selected group's commission total. Pure function of current state,
// recomputed on every read.
func (s *Session) GrandTotal() decimal.Decimal {
	total := s.Totals().NetAfterPartner.Add(s.carry)
	if s.selection.Group != "" {
		total = total.Add(s.ledger.TotalCommission(s.selection.Group))
	}
	return total
}

// recompute re-derives everything that depends on base state and enforces
// the confirmation invariant: a group stays confirmed only while its
// recomputed book total still equals the signed amount frozen in its entry.
// A figure whose inputs moved cannot keep being presented as final. The
// stale entry itself stays in the book until re-confirmed or cleared.
func (s *Session) recompute() {
	for group := range s.confirmed {
		entry, ok := s.book.Entry(group)
		if !ok || !s.BookTotal(group).Equal(entry.Signed()) {
			delete(s.confirmed, group)
		}
	}
}
