package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Statement exports arrive as .htm files holding a single table with the
// columns [Login, Name, LastName, MiddleName, Credit, Equity]. The first
// row is a header and rows with fewer than six cells are decoration, both
// are skipped. Several files may be uploaded for one report; the caller
// concatenates the parsed records.

const statementColumns = 6

// ParseAccountsHTML extracts the raw account records from one statement
// file. The name parts are folded into a single display name; cell text is
// kept raw so the core's normalizer is the one deciding what a number is.
func ParseAccountsHTML(r io.Reader) ([]map[string]any, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse statement html: %w", err)
	}

	var records []map[string]any
	doc.Find("table tr").Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td, th").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(cells) < statementColumns {
			return
		}
		records = append(records, map[string]any{
			"Login":  cells[0],
			"Name":   joinNameParts(cells[1], cells[2], cells[3]),
			"Credit": cells[4],
			"Equity": cells[5],
		})
	})

	if len(records) == 0 {
		return nil, nil
	}
	// first full row is the header
	return records[1:], nil
}

func joinNameParts(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
