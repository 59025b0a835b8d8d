package recon

import (
	"testing"

	"github.com/shopspring/decimal"
)

// D is a helper for tests to build decimals from a compact literal.
func D(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// acc is a helper to build an account from raw-looking cell values.
func acc(login, name string, credit, equity any) Account {
	return Account{Login: login, Name: name, Credit: Normalize(credit), Equity: Normalize(equity)}
}

// grp is a helper to build a mapping row.
func grp(id, name string, share any) Group {
	return Group{ID: id, GroupName: name, SharePercent: Normalize(share)}
}

// newTestSession loads the dataset most tests build on: one
// account with 200 profit in group G1 at 50% share, plus an unmapped
// account, at the default 3.67 rate.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	s.Load(
		[]Account{
			acc("100", "Alice", 1000, 800),
			acc("200", "Bob", "500", "650"),
		},
		[]Group{
			grp("100", "G1", 50),
		},
	)
	return s
}
