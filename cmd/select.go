package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type selectCmd struct {
	names string
	clear bool
}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "select a partner group and filter accounts by name" }
func (*selectCmd) Usage() string {
	return `rbk select [-names <a,b,c>] [-clear] [<group>]

  Selects the partner group the commission and book commands operate on, and
  optionally restricts the report to a set of account names. With no group
  argument the group selection is left unchanged.

Usage Examples:
$ rbk select G1
$ rbk select -names "John Smith,Jane Doe"
$ rbk select -clear
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.names, "names", "", "Comma-separated account names to keep. Empty keeps all.")
	f.BoolVar(&c.clear, "clear", false, "Clear the group selection and the name filter.")
}

func (c *selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.clear {
		s.Select("")
		s.FilterNames()
	} else {
		if f.NArg() > 0 {
			s.Select(f.Arg(0))
		}
		if c.names != "" {
			var names []string
			for _, n := range strings.Split(c.names, ",") {
				if n = strings.TrimSpace(n); n != "" {
					names = append(names, n)
				}
			}
			s.FilterNames(names...)
		}
	}

	if err := SaveSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if g := s.SelectedGroup(); g != "" {
		fmt.Printf("Selected group %q\n", g)
	} else {
		fmt.Println("No group selected")
	}
	return subcommands.ExitSuccess
}
