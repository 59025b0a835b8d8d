package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etawil/recon"
	"github.com/etawil/recon/ingest"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the report table to an XLSX or CSV file" }
func (*exportCmd) Usage() string {
	return `rbk export -o <report.xlsx>

  Exports the report for the current filter, with its totals row, to the
  given file. The format follows the file extension.

Usage Examples:
$ rbk export -o report.xlsx
$ rbk export -o report.csv
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "report.xlsx", "Output file (.xlsx or .csv).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	table := recon.ReportTable(s)

	switch strings.ToLower(filepath.Ext(c.output)) {
	case ".xlsx":
		err = ingest.WriteReportXLSX(c.output, table)
	case ".csv":
		var out *os.File
		out, err = os.Create(c.output)
		if err == nil {
			err = ingest.WriteReportCSV(out, table)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported export format %q\n", filepath.Ext(c.output))
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d rows to %s\n", len(table.Rows), c.output)
	return subcommands.ExitSuccess
}
