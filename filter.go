package recon

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Selection restricts the account universe. A nil/empty name set keeps all
// names, and an empty group keeps all groups.
type Selection struct {
	Names map[string]struct{}
	Group string
}

// SelectNames builds a Selection keeping only the given account names.
func SelectNames(names ...string) Selection {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return Selection{Names: set}
}

// keeps reports whether the account passes the selection. Group membership
// is re-derived through the join rather than read from the enrichment's
// cached GroupName, so that filtering before or after enrichment yields
// identical totals.
func (sel Selection) keeps(a Account, groups []Group) bool {
	if len(sel.Names) > 0 {
		if _, ok := sel.Names[a.Name]; !ok {
			return false
		}
	}
	if sel.Group != "" {
		g := findGroup(groups, a.Login)
		if g == nil || g.GroupName != sel.Group {
			return false
		}
	}
	return true
}

// FilterAccounts yields the accounts passing the selection, preserving order.
func FilterAccounts(accounts []Account, groups []Group, sel Selection) iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, a := range accounts {
			if !sel.keeps(a, groups) {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Filter yields the enriched accounts passing the selection, preserving order.
func Filter(rows iter.Seq[EnrichedAccount], groups []Group, sel Selection) iter.Seq[EnrichedAccount] {
	return func(yield func(EnrichedAccount) bool) {
		for e := range rows {
			if !sel.keeps(e.Account, groups) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Totals is the elementwise sum of the derived columns over a row subset.
type Totals struct {
	PnL             decimal.Decimal
	PnLConverted    decimal.Decimal
	PartnerShare    decimal.Decimal
	NetAfterPartner decimal.Decimal
}

func (t Totals) Add(e EnrichedAccount) Totals {
	return Totals{
		PnL:             t.PnL.Add(e.PnL),
		PnLConverted:    t.PnLConverted.Add(e.PnLConverted),
		PartnerShare:    t.PartnerShare.Add(e.PartnerShare),
		NetAfterPartner: t.NetAfterPartner.Add(e.NetAfterPartner),
	}
}

// Sum folds a sequence of enriched rows into Totals.
func Sum(rows iter.Seq[EnrichedAccount]) Totals {
	var t Totals
	for e := range rows {
		t = t.Add(e)
	}
	return t
}
