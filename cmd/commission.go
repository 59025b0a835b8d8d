package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etawil/recon/renderer"
	"github.com/google/subcommands"
)

type commissionCmd struct{}

func (*commissionCmd) Name() string     { return "commission" }
func (*commissionCmd) Synopsis() string { return "display the commission rows of a group" }
func (*commissionCmd) Usage() string {
	return `rbk commission [<group>]

  Displays the commission rows of the given group, or of the selected group,
  with their lots, rebate, computed commission and the group total. Also
  lists the candidate account names not yet in the ledger.
`
}

func (*commissionCmd) SetFlags(f *flag.FlagSet) {}

func (c *commissionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	group := s.SelectedGroup()
	if f.NArg() > 0 {
		group = f.Arg(0)
	}
	if group == "" {
		fmt.Fprintln(os.Stderr, "Error: no group given and no group selected")
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.CommissionMarkdown(s, group))
	return subcommands.ExitSuccess
}
