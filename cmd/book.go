package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etawil/recon/renderer"
	"github.com/google/subcommands"
)

type bookCmd struct{}

func (*bookCmd) Name() string     { return "book" }
func (*bookCmd) Synopsis() string { return "display the booked entries and their status" }
func (*bookCmd) Usage() string {
	return `rbk book

  Displays every booked entry with its frozen amount and kind, the current
  total for the same group, and whether the entry is still confirmed.
`
}

func (*bookCmd) SetFlags(f *flag.FlagSet) {}

func (c *bookCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BookMarkdown(s))
	return subcommands.ExitSuccess
}
