package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type unconfirmCmd struct {
	clear bool
}

func (*unconfirmCmd) Name() string     { return "unconfirm" }
func (*unconfirmCmd) Synopsis() string { return "drop the confirmation of the selected group" }
func (*unconfirmCmd) Usage() string {
	return `rbk unconfirm [-clear] [<group>]

  Drops the confirmation of the selected group. The booked entry stays in
  the book unless -clear is given, which removes it as well. With a group
  argument, that group is selected first.
`
}

func (c *unconfirmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Also remove the booked entry.")
}

func (c *unconfirmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() > 0 {
		s.Select(f.Arg(0))
	}

	if err := s.Unconfirm(); err != nil {
		fmt.Fprintln(os.Stderr, "Error unconfirming:", err)
		return subcommands.ExitFailure
	}
	if c.clear {
		s.ClearEntry(s.SelectedGroup())
	}

	if err := SaveSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Unconfirmed %q\n", s.SelectedGroup())
	return subcommands.ExitSuccess
}
