package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etawil/recon"
	md "github.com/nao1215/markdown"
)

// CommissionMarkdown renders a group's commission ledger: its editable
// rows, the derived commissions, the group total and the account names
// still available for a new row.
func CommissionMarkdown(s *recon.Session, group string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Commission: %s", group))

	rowSet := s.CommissionRows(group)
	if len(rowSet) == 0 {
		doc.PlainText("No commission rows.")
	} else {
		rows := make([][]string, 0, len(rowSet))
		for i, r := range rowSet {
			rows = append(rows, []string{
				strconv.Itoa(i),
				r.Account,
				r.Lots.String(),
				r.Rebate.String(),
				r.Commission().String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"#", "Account", "Lots", "Rebate", "Commission"},
			Rows:   rows,
		})
		doc.PlainText(fmt.Sprintf("Total commission: %s", money(s.TotalCommission(group))))
	}

	if candidates := s.CommissionCandidates(group); len(candidates) > 0 {
		doc.H2("Available accounts")
		doc.PlainText(strings.Join(candidates, ", "))
	}

	return doc.String()
}
