package recon

import (
	"iter"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EnrichedAccount is an Account joined to its group with every derived
// figure attached. It is recomputed from scratch whenever the account set,
// the group set or the conversion rate changes; it is never persisted.
type EnrichedAccount struct {
	Account
	PnL             decimal.Decimal // credit - equity, in the statement currency
	PnLConverted    decimal.Decimal // pnl * conversion rate
	PartnerPercent  Percent
	PartnerShare    decimal.Decimal // round(pnlConverted * percent / 100)
	NetAfterPartner decimal.Decimal // pnlConverted - partnerShare
	GroupName       string
}

// enrichOne derives every figure for a single account.
func enrichOne(a Account, groups []Group, rate decimal.Decimal) EnrichedAccount {
	e := EnrichedAccount{Account: a}
	e.PnL = a.Credit.Sub(a.Equity)
	e.PnLConverted = e.PnL.Mul(rate)

	sharePercent := decimal.Zero
	if g := findGroup(groups, a.Login); g != nil {
		sharePercent = g.SharePercent
		e.GroupName = g.GroupName
	}
	e.PartnerPercent = Percent(sharePercent.InexactFloat64())
	// Round(0) rounds half away from zero, the round-half-up the partner
	// contract expects on share magnitudes.
	e.PartnerShare = e.PnLConverted.Mul(sharePercent).Div(hundred).Round(0)
	e.NetAfterPartner = e.PnLConverted.Sub(e.PartnerShare)
	return e
}

// Enrich yields one EnrichedAccount per input account, preserving input
// order. The sequence is lazy and pure: ranging over it twice recomputes
// from the same snapshot, and no state is touched.
func Enrich(accounts []Account, groups []Group, rate decimal.Decimal) iter.Seq[EnrichedAccount] {
	return func(yield func(EnrichedAccount) bool) {
		for _, a := range accounts {
			if !yield(enrichOne(a, groups, rate)) {
				return
			}
		}
	}
}
