// Package recon computes a multi-stage reconciliation over uploaded
// trading-account statements and a partner/group mapping table.
//
// The core functionalities include:
//   - Record Normalization: coercing heterogeneous spreadsheet cell values
//     (strings, numbers, blanks) into exact decimals, with a deliberate
//     fallback-to-zero policy so a malformed cell never aborts a report.
//   - Enrichment: joining each account to its partner group and deriving
//     profit/loss, currency-converted profit/loss, the partner's share and
//     the net amount after that share.
//   - Commission Ledger: per-group editable rows of lots and rebate whose
//     commission is always derived, never stored.
//   - Book: one Profit/Loss entry per group with an explicit confirm action
//     and automatic invalidation when any underlying figure changes.
//   - Session: an explicit state object (conversion rate, filters, selected
//     group, confirmed set) recomputed in full after every mutation.
//
// The package has no I/O of its own; parsing uploaded files and writing
// spreadsheets live in the ingest subpackage, and this package serves as the
// foundational logic for the `rbk` command-line tool.
package recon
