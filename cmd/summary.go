package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etawil/recon/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the session totals and grand total" }
func (*summaryCmd) Usage() string {
	return `rbk summary

  Displays the session summary: report totals, carry forward, commissions,
  the grand total and the confirmed groups.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
