package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type carryCmd struct{}

func (*carryCmd) Name() string     { return "carry" }
func (*carryCmd) Synopsis() string { return "set the carry-forward balance" }
func (*carryCmd) Usage() string {
	return `rbk carry [<amount>]

  Sets the prior-period balance folded into the grand total. A malformed
  amount is treated as zero. With no argument the current balance is shown.
`
}

func (*carryCmd) SetFlags(f *flag.FlagSet) {}

func (c *carryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Printf("Carry forward is %s\n", s.CarryForward())
		return subcommands.ExitSuccess
	}

	s.SetCarryForward(f.Arg(0))

	if err := SaveSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Carry forward set to %s\n", s.CarryForward())
	return subcommands.ExitSuccess
}
