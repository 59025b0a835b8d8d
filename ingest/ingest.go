// Package ingest parses uploaded statements into the raw records the
// reconciliation core consumes, and writes the report table back out as a
// spreadsheet. It is the only place that knows about file formats; the core
// never touches a file.
package ingest

import "github.com/etawil/recon"

// Accounts converts raw parsed records into accounts, in input order.
func Accounts(records []map[string]any) []recon.Account {
	accounts := make([]recon.Account, 0, len(records))
	for _, rec := range records {
		accounts = append(accounts, recon.AccountFromRecord(rec))
	}
	return accounts
}

// Groups converts raw parsed records into mapping rows, in input order.
func Groups(records []map[string]any) []recon.Group {
	groups := make([]recon.Group, 0, len(records))
	for _, rec := range records {
		groups = append(groups, recon.GroupFromRecord(rec))
	}
	return groups
}
