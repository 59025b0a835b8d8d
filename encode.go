package recon

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists a session in a human-readable JSONL form for the CLI
// boundary: one record per line, identified by its "record" property. The
// core itself never touches the disk; the `rbk` tool decodes a session at
// startup and encodes it back after each command, the same way a ledger
// file would be.
//
// Record kinds, in encode order:
//   state    rate, carry, selected group, name filter, confirmed groups
//   account  one ingested account row
//   group    one ingested mapping row
//   row      one commission ledger row
//   book     one book entry

type recordKind string

const (
	recState   recordKind = "state"
	recAccount recordKind = "account"
	recGroup   recordKind = "group"
	recRow     recordKind = "row"
	recBook    recordKind = "book"
)

// EncodeSession writes the session as JSONL.
func EncodeSession(w io.Writer, s *Session) error {
	lines := make([]*jsonObjectWriter, 0, 1+len(s.accounts)+len(s.groups))

	state := &jsonObjectWriter{}
	state.Append("record", recState).
		Append("rate", s.rate).
		Optional("carry", s.carry).
		Optional("selected", s.selection.Group).
		Optional("names", s.FilteredNames()).
		Optional("confirmed", s.ConfirmedGroups())
	lines = append(lines, state)

	for _, a := range s.accounts {
		l := &jsonObjectWriter{}
		l.Append("record", recAccount).
			Append("login", a.Login).
			Optional("name", a.Name).
			Optional("credit", a.Credit).
			Optional("equity", a.Equity)
		lines = append(lines, l)
	}
	for _, g := range s.groups {
		l := &jsonObjectWriter{}
		l.Append("record", recGroup).
			Append("id", g.ID).
			Append("groupName", g.GroupName).
			Optional("sharePercent", g.SharePercent)
		lines = append(lines, l)
	}
	for r := range s.ledger.All() {
		l := &jsonObjectWriter{}
		l.Append("record", recRow).
			Append("group", r.Group).
			Append("account", r.Account).
			Optional("lots", r.Lots).
			Optional("rebate", r.Rebate)
		lines = append(lines, l)
	}
	for e := range s.book.Entries() {
		l := &jsonObjectWriter{}
		l.Append("record", recBook).
			Append("group", e.Group).
			Append("amount", e.Amount).
			Append("kind", e.Kind.String())
		lines = append(lines, l)
	}

	for _, l := range lines {
		b, err := l.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSession reads a JSONL session back. Unknown record kinds are an
// error; malformed numeric values inside known records normalize to zero
// like any other ingested cell.
func DecodeSession(r io.Reader) (*Session, error) {
	s := NewSession()
	var selected string
	var names []string
	var confirmed []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var identifier struct {
			Record recordKind `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		switch identifier.Record {
		case recState:
			var temp struct {
				Rate      json.Number `json:"rate"`
				Carry     json.Number `json:"carry"`
				Selected  string      `json:"selected"`
				Names     []string    `json:"names"`
				Confirmed []string    `json:"confirmed"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, err
			}
			s.rate = Normalize(temp.Rate)
			if !s.rate.IsPositive() {
				s.rate = DefaultConversionRate
			}
			s.carry = Normalize(temp.Carry)
			selected = temp.Selected
			names = temp.Names
			confirmed = temp.Confirmed
		case recAccount:
			var temp struct {
				Login  string      `json:"login"`
				Name   string      `json:"name"`
				Credit json.Number `json:"credit"`
				Equity json.Number `json:"equity"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, err
			}
			s.accounts = append(s.accounts, Account{
				Login:  temp.Login,
				Name:   temp.Name,
				Credit: Normalize(temp.Credit),
				Equity: Normalize(temp.Equity),
			})
		case recGroup:
			var temp struct {
				ID           string      `json:"id"`
				GroupName    string      `json:"groupName"`
				SharePercent json.Number `json:"sharePercent"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, err
			}
			s.groups = append(s.groups, Group{
				ID:           temp.ID,
				GroupName:    temp.GroupName,
				SharePercent: Normalize(temp.SharePercent),
			})
		case recRow:
			var temp struct {
				Group   string      `json:"group"`
				Account string      `json:"account"`
				Lots    json.Number `json:"lots"`
				Rebate  json.Number `json:"rebate"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, err
			}
			s.ledger.rows = append(s.ledger.rows, CommissionRow{
				Group:   temp.Group,
				Account: temp.Account,
				Lots:    Normalize(temp.Lots),
				Rebate:  Normalize(temp.Rebate),
			})
		case recBook:
			var temp struct {
				Group  string      `json:"group"`
				Amount json.Number `json:"amount"`
				Kind   string      `json:"kind"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, err
			}
			kind, err := ParseEntryKind(temp.Kind)
			if err != nil {
				return nil, fmt.Errorf("could not decode book record %q: %w", string(line), err)
			}
			s.book.Put(BookEntry{Group: temp.Group, Amount: Normalize(temp.Amount), Kind: kind})
		default:
			return nil, fmt.Errorf("unknown record kind %q in line %q", identifier.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	s.selection.Group = selected
	if len(names) > 0 {
		s.selection.Names = SelectNames(names...).Names
	}
	for _, g := range confirmed {
		s.confirmed[g] = struct{}{}
	}
	// drop confirmations whose totals no longer hold up
	s.recompute()
	return s, nil
}
