package recon

import "github.com/shopspring/decimal"

// Account is one row of an uploaded trading-account statement. It is
// immutable once ingested. Login is the join key to Group and need not be
// unique.
type Account struct {
	Login  string
	Name   string
	Credit decimal.Decimal
	Equity decimal.Decimal
}

// Group is one row of the partner mapping table. It is immutable once
// ingested. Several rows may carry the same ID; the join uses the first
// match in input order.
type Group struct {
	ID           string
	GroupName    string
	SharePercent decimal.Decimal
}

// AccountFromRecord builds an Account from a raw parsed record. Any field
// may be absent; numeric fields normalize to zero.
func AccountFromRecord(rec map[string]any) Account {
	return Account{
		Login:  NormalizeKey(field(rec, "Login", "login")),
		Name:   NormalizeKey(field(rec, "Name", "name")),
		Credit: Normalize(field(rec, "Credit", "credit")),
		Equity: Normalize(field(rec, "Equity", "equity")),
	}
}

// GroupFromRecord builds a Group from a raw parsed record. The mapping
// spreadsheet is hand made, so a few header spellings are accepted.
func GroupFromRecord(rec map[string]any) Group {
	return Group{
		ID:           NormalizeKey(field(rec, "id", "ID", "Id", "Login", "login")),
		GroupName:    NormalizeKey(field(rec, "groupName", "GroupName", "Group", "group")),
		SharePercent: Normalize(field(rec, "sharePercent", "SharePercent", "Share", "share")),
	}
}

func field(rec map[string]any, names ...string) any {
	for _, n := range names {
		if v, ok := rec[n]; ok {
			return v
		}
	}
	return nil
}

// findGroup returns the first group whose normalized id matches the login,
// or nil. First match by input order is the documented tie-break when
// several rows share an id.
func findGroup(groups []Group, login string) *Group {
	key := NormalizeKey(login)
	for i := range groups {
		if NormalizeKey(groups[i].ID) == key {
			return &groups[i]
		}
	}
	return nil
}
