// Package renderer turns the reconciliation structures into markdown, ready
// for the terminal or for publication.
package renderer

import (
	"bytes"

	"github.com/etawil/recon"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the export table as a markdown document. The
// totals row rides along as the table's last row, per the export contract.
func ReportMarkdown(table recon.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts Report")

	rows := make([][]string, 0, len(table.Rows)+1)
	rows = append(rows, table.Rows...)
	rows = append(rows, table.Totals)
	doc.Table(md.TableSet{
		Header: table.Header,
		Rows:   rows,
	})

	return doc.String()
}
