package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etawil/recon"
	"github.com/google/subcommands"
)

type setRowCmd struct {
	field string
}

func (*setRowCmd) Name() string     { return "set-row" }
func (*setRowCmd) Synopsis() string { return "set the lots or rebate of a commission row" }
func (*setRowCmd) Usage() string {
	return `rbk set-row -f <lots|rebate> <index> <value>

  Sets an editable field of the commission row at the given position within
  the selected group's rows. The commission column itself is derived and
  cannot be set. A malformed value is treated as zero.

Usage Examples:
$ rbk set-row -f lots 0 10
$ rbk set-row -f rebate 0 2.5
`
}

func (c *setRowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.field, "f", recon.FieldLots, "Field to set: lots or rebate.")
}

func (c *setRowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: a row index and a value are required")
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

	if err := s.UpdateCommissionRow(index, c.field, f.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting %s of row %d: %v\n", c.field, index, err)
		return subcommands.ExitFailure
	}

	if err := SaveSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Set %s of row %d to %s\n", c.field, index, f.Arg(1))
	return subcommands.ExitSuccess
}
