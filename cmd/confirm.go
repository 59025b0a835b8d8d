package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type confirmCmd struct{}

func (*confirmCmd) Name() string     { return "confirm" }
func (*confirmCmd) Synopsis() string { return "book and confirm the selected group's total" }
func (*confirmCmd) Usage() string {
	return `rbk confirm [<group>]

  Books the current total of the selected group as a Profit or Loss entry
  and marks it confirmed. A confirmed entry is frozen: it keeps its amount
  and kind until the group's recomputed total drifts away from it, at which
  point the confirmation is dropped. With a group argument, that group is
  selected first.

Usage Examples:
$ rbk confirm G1
`
}

func (*confirmCmd) SetFlags(f *flag.FlagSet) {}

func (c *confirmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() > 0 {
		s.Select(f.Arg(0))
	}

	if err := s.Confirm(); err != nil {
		fmt.Fprintln(os.Stderr, "Error confirming:", err)
		return subcommands.ExitFailure
	}

	if err := SaveSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	group := s.SelectedGroup()
	if entry, ok := s.Book().Entry(group); ok {
		fmt.Printf("Confirmed %q: %s %s\n", group, entry.Kind, entry.Amount.Round(0))
	}
	return subcommands.ExitSuccess
}
