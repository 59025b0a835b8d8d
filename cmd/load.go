package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etawil/recon/ingest"
	"github.com/google/subcommands"
)

type loadCmd struct {
	accountsFile string
	groupsFile   string
}

func (*loadCmd) Name() string { return "load" }
func (*loadCmd) Synopsis() string {
	return "load account statements and partner groups into the session"
}
func (*loadCmd) Usage() string {
	return `rbk load -accounts <statement.htm> [-groups <groups.xlsx>]

  Loads the uploaded account statement and the partner group table into the
  session. Statements are HTML exports or CSV files, groups come from XLSX or
  CSV files. Loading replaces the previous universe and resets commissions,
  booked entries and the selection.

Usage Examples:
$ rbk load -accounts statement.htm -groups groups.xlsx
$ rbk load -accounts accounts.csv
`
}

func (c *loadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountsFile, "accounts", "", "Account statement file (.htm, .html or .csv).")
	f.StringVar(&c.groupsFile, "groups", "", "Partner group file (.xlsx or .csv).")
}

func (c *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountsFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -accounts is required")
		return subcommands.ExitUsageError
	}

	accountRecords, err := readAccountRecords(c.accountsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts %q: %v\n", c.accountsFile, err)
		return subcommands.ExitFailure
	}

	var groupRecords []map[string]any
	if c.groupsFile != "" {
		groupRecords, err = readGroupRecords(c.groupsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading groups %q: %v\n", c.groupsFile, err)
			return subcommands.ExitFailure
		}
	}

	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s.Load(ingest.Accounts(accountRecords), ingest.Groups(groupRecords))

	if err := SaveSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Loaded %d accounts and %d groups into %s\n", len(accountRecords), len(groupRecords), *sessionFile)
	return subcommands.ExitSuccess
}

func readAccountRecords(path string) ([]map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".htm", ".html":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ingest.ParseAccountsHTML(f)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ingest.ReadRecordsCSV(f)
	default:
		return nil, fmt.Errorf("unsupported account statement format %q", filepath.Ext(path))
	}
}

func readGroupRecords(path string) ([]map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ingest.ReadGroupsXLSX(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ingest.ReadRecordsCSV(f)
	default:
		return nil, fmt.Errorf("unsupported group table format %q", filepath.Ext(path))
	}
}
