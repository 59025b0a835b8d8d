package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etawil/recon"
	"github.com/etawil/recon/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the enriched account report" }
func (*reportCmd) Usage() string {
	return `rbk report

  Displays the enriched report for the current filter: one row per account
  with its PnL, converted PnL, partner share and net total, and a totals row.
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(recon.ReportTable(s)))
	return subcommands.ExitSuccess
}
