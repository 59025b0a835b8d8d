package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type addRowCmd struct{}

func (*addRowCmd) Name() string     { return "add-row" }
func (*addRowCmd) Synopsis() string { return "add a commission row for an account" }
func (*addRowCmd) Usage() string {
	return `rbk add-row <account name>

  Adds a commission row for the given account to the selected group's
  ledger, with zero lots and rebate. Adding a row that already exists is a
  no-op. A group must be selected first.

Usage Examples:
$ rbk select G1
$ rbk add-row "John Smith"
`
}

func (*addRowCmd) SetFlags(f *flag.FlagSet) {}

func (c *addRowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: an account name is required")
		return subcommands.ExitUsageError
	}
	account := strings.Join(f.Args(), " ")

	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := s.AddCommissionRow(account); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding row for %q: %v\n", account, err)
		return subcommands.ExitFailure
	}

	if err := SaveSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added commission row for %q in group %q\n", account, s.SelectedGroup())
	return subcommands.ExitSuccess
}
