package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etawil/recon"
	"github.com/google/subcommands"
)

type rateCmd struct {
	fetch bool
	base  string
	quote string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "set or fetch the conversion rate" }
func (*rateCmd) Usage() string {
	return `rbk rate [-fetch] [<rate>]

  Sets the conversion rate applied to every account's PnL. A non-positive or
  malformed rate falls back to the default. With -fetch the current rate is
  fetched from the public exchange rate API instead.

Usage Examples:
$ rbk rate 3.6725
$ rbk rate -fetch
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.fetch, "fetch", false, "Fetch the rate from the exchange rate API.")
	f.StringVar(&c.base, "base", "USD", "Base currency for -fetch.")
	f.StringVar(&c.quote, "quote", "AED", "Quote currency for -fetch.")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.fetch:
		rate, err := recon.FetchConversionRate(c.base, c.quote)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s/%s rate: %v\n", c.base, c.quote, err)
			return subcommands.ExitFailure
		}
		s.SetConversionRate(rate)
	case f.NArg() > 0:
		s.SetConversionRate(f.Arg(0))
	default:
		fmt.Printf("Conversion rate is %s\n", s.ConversionRate())
		return subcommands.ExitSuccess
	}

	if err := SaveSession(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Conversion rate set to %s\n", s.ConversionRate())
	return subcommands.ExitSuccess
}
