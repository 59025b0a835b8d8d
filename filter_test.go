package recon

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func fixtureAccounts() ([]Account, []Group) {
	accounts := []Account{
		acc("100", "Alice", 1000, 800),
		acc("101", "Carol", 400, 100),
		acc("200", "Bob", 500, 650),
	}
	groups := []Group{
		grp("100", "G1", 50),
		grp("101", "G2", 25),
		grp("200", "G1", 50),
	}
	return accounts, groups
}

func TestFilter_ByName(t *testing.T) {
	accounts, groups := fixtureAccounts()
	rows := Filter(Enrich(accounts, groups, D("1")), groups, SelectNames("Alice", "Bob"))

	var names []string
	for e := range rows {
		names = append(names, e.Name)
	}
	if !slices.Equal(names, []string{"Alice", "Bob"}) {
		t.Errorf("filtered names = %v, want [Alice Bob]", names)
	}
}

func TestFilter_ByGroup(t *testing.T) {
	accounts, groups := fixtureAccounts()
	sel := Selection{Group: "G1"}

	var logins []string
	for e := range Filter(Enrich(accounts, groups, D("1")), groups, sel) {
		logins = append(logins, e.Login)
	}
	if !slices.Equal(logins, []string{"100", "200"}) {
		t.Errorf("filtered logins = %v, want [100 200]", logins)
	}
}

// Filtering before enrichment and after enrichment must produce identical
// totals: group membership is re-derived through the join either way.
func TestFilter_OrderAssociativity(t *testing.T) {
	accounts, groups := fixtureAccounts()
	rate := D("3.67")
	sel := Selection{Group: "G1"}

	after := Sum(Filter(Enrich(accounts, groups, rate), groups, sel))

	pre := slices.Collect(FilterAccounts(accounts, groups, sel))
	before := Sum(Enrich(pre, groups, rate))

	for _, pair := range []struct {
		name string
		a, b decimal.Decimal
	}{
		{"PnL", after.PnL, before.PnL},
		{"PnLConverted", after.PnLConverted, before.PnLConverted},
		{"PartnerShare", after.PartnerShare, before.PartnerShare},
		{"NetAfterPartner", after.NetAfterPartner, before.NetAfterPartner},
	} {
		if !pair.a.Equal(pair.b) {
			t.Errorf("%s: filter-after-enrich %s != filter-before-enrich %s", pair.name, pair.a, pair.b)
		}
	}
}

// Totals are the exact elementwise sums over the filtered rows.
func TestSum_Property(t *testing.T) {
	accounts, groups := fixtureAccounts()
	rows := Filter(Enrich(accounts, groups, D("3.67")), groups, Selection{})

	manual := decimal.Zero
	for e := range rows {
		manual = manual.Add(e.NetAfterPartner)
	}
	totals := Sum(Filter(Enrich(accounts, groups, D("3.67")), groups, Selection{}))
	if !totals.NetAfterPartner.Equal(manual) {
		t.Errorf("totals.NetAfterPartner = %s, want sum of rows %s", totals.NetAfterPartner, manual)
	}
}

func TestFilter_EmptySelectionKeepsAll(t *testing.T) {
	accounts, groups := fixtureAccounts()
	n := 0
	for range Filter(Enrich(accounts, groups, D("1")), groups, Selection{}) {
		n++
	}
	if n != len(accounts) {
		t.Errorf("empty selection kept %d rows, want %d", n, len(accounts))
	}
}
