package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type rmRowCmd struct{}

func (*rmRowCmd) Name() string     { return "rm-row" }
func (*rmRowCmd) Synopsis() string { return "remove a commission row by position" }
func (*rmRowCmd) Usage() string {
	return `rbk rm-row <index>

  Removes the commission row at the given position within the selected
  group's rows, as listed by 'rbk commission'. A group must be selected
  first.
`
}

func (*rmRowCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmRowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a row index is required")
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid row index %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := s.RemoveCommissionRow(index); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing row %d: %v\n", index, err)
		return subcommands.ExitFailure
	}

	if err := SaveSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed commission row %d from group %q\n", index, s.SelectedGroup())
	return subcommands.ExitSuccess
}
