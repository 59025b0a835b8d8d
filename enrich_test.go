package recon

import (
	"slices"
	"testing"
)

// A 200 profit at rate 3.67 with a 50% partner share converts to 734,
// splits 367/367.
func TestEnrich_DerivedFigures(t *testing.T) {
	accounts := []Account{acc("100", "Alice", 1000, 800)}
	groups := []Group{grp("100", "G1", 50)}

	rows := slices.Collect(Enrich(accounts, groups, D("3.67")))
	if len(rows) != 1 {
		t.Fatalf("Enrich yielded %d rows, want 1", len(rows))
	}
	e := rows[0]

	if got, want := e.PnL.String(), "200"; got != want {
		t.Errorf("PnL = %s, want %s", got, want)
	}
	if got, want := e.PnLConverted.String(), "734"; got != want {
		t.Errorf("PnLConverted = %s, want %s", got, want)
	}
	if !e.PartnerPercent.Equal(50) {
		t.Errorf("PartnerPercent = %s, want 50.00%%", e.PartnerPercent)
	}
	if got, want := e.PartnerShare.String(), "367"; got != want {
		t.Errorf("PartnerShare = %s, want %s", got, want)
	}
	if got, want := e.NetAfterPartner.String(), "367"; got != want {
		t.Errorf("NetAfterPartner = %s, want %s", got, want)
	}
	if e.GroupName != "G1" {
		t.Errorf("GroupName = %q, want G1", e.GroupName)
	}
}

func TestEnrich_Invariants(t *testing.T) {
	accounts := []Account{
		acc("100", "Alice", 1000, 800),
		acc("101", "Carol", "250.30", "400"),
		acc("200", "Bob", 500, 650),
		acc("300", "Dave", "", "12"),
	}
	groups := []Group{
		grp("100", "G1", 50),
		grp("101", "G1", "33"),
		grp("300", "G2", 10),
	}

	for e := range Enrich(accounts, groups, D("3.67")) {
		wantShare := e.PnLConverted.Mul(Normalize(float64(e.PartnerPercent))).Div(hundred).Round(0)
		if !e.PartnerShare.Equal(wantShare) {
			t.Errorf("%s: PartnerShare = %s, want round(pnlConverted*percent/100) = %s", e.Name, e.PartnerShare, wantShare)
		}
		if !e.NetAfterPartner.Equal(e.PnLConverted.Sub(e.PartnerShare)) {
			t.Errorf("%s: NetAfterPartner = %s, want pnlConverted-partnerShare", e.Name, e.NetAfterPartner)
		}
	}
}

func TestEnrich_UnmappedAccountDefaultsToZeroShare(t *testing.T) {
	rows := slices.Collect(Enrich([]Account{acc("999", "Nobody", 100, 40)}, nil, D("2")))
	e := rows[0]
	if !e.PartnerPercent.Equal(0) {
		t.Errorf("PartnerPercent = %s, want 0", e.PartnerPercent)
	}
	if !e.PartnerShare.IsZero() {
		t.Errorf("PartnerShare = %s, want 0", e.PartnerShare)
	}
	if !e.NetAfterPartner.Equal(e.PnLConverted) {
		t.Errorf("NetAfterPartner = %s, want full PnLConverted %s", e.NetAfterPartner, e.PnLConverted)
	}
	if e.GroupName != "" {
		t.Errorf("GroupName = %q, want empty", e.GroupName)
	}
}

// Multiple mapping rows with the same id: the first one in input order wins.
func TestEnrich_FirstMatchTieBreak(t *testing.T) {
	groups := []Group{
		grp("100", "First", 10),
		grp("100", "Second", 90),
	}
	rows := slices.Collect(Enrich([]Account{acc("100", "Alice", 10, 0)}, groups, D("1")))
	if rows[0].GroupName != "First" {
		t.Errorf("GroupName = %q, want the first matching row", rows[0].GroupName)
	}
	if !rows[0].PartnerPercent.Equal(10) {
		t.Errorf("PartnerPercent = %s, want the first matching row's 10%%", rows[0].PartnerPercent)
	}
}

func TestEnrich_OrderPreserving(t *testing.T) {
	accounts := []Account{
		acc("3", "c", 1, 0),
		acc("1", "a", 1, 0),
		acc("2", "b", 1, 0),
	}
	var got []string
	for e := range Enrich(accounts, nil, D("1")) {
		got = append(got, e.Name)
	}
	if !slices.Equal(got, []string{"c", "a", "b"}) {
		t.Errorf("order = %v, want input order [c a b]", got)
	}
}

// Negative shares round half away from zero on the magnitude, keeping the
// netAfterPartner identity exact.
func TestEnrich_NegativePnL(t *testing.T) {
	rows := slices.Collect(Enrich(
		[]Account{acc("100", "Alice", 800, 1000)},
		[]Group{grp("100", "G1", 50)},
		D("3.67"),
	))
	e := rows[0]
	if got, want := e.PnLConverted.String(), "-734"; got != want {
		t.Errorf("PnLConverted = %s, want %s", got, want)
	}
	if got, want := e.PartnerShare.String(), "-367"; got != want {
		t.Errorf("PartnerShare = %s, want %s", got, want)
	}
	if !e.NetAfterPartner.Equal(e.PnLConverted.Sub(e.PartnerShare)) {
		t.Errorf("NetAfterPartner identity broken: %s", e.NetAfterPartner)
	}
}
