package renderer

import (
	"bytes"
	"fmt"

	"github.com/etawil/recon"
	md "github.com/nao1215/markdown"
)

// converted figures are in dirhams; the statement side is USD.
const displayCurrency = "AED"

func money(v interface{ InexactFloat64() float64 }) string {
	return recon.M(v.InexactFloat64(), displayCurrency).String()
}

// SummaryMarkdown renders the session's headline figures: selection, rate,
// totals, the selected group's commission and the grand total.
func SummaryMarkdown(s *recon.Session) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Reconciliation Summary")

	selected := s.SelectedGroup()
	if selected == "" {
		selected = "(all groups)"
	}
	doc.PlainText(fmt.Sprintf("Selected: %s | rate %s | carry-forward %s",
		selected, s.ConversionRate(), money(s.CarryForward())))

	totals := s.Totals()
	rows := [][]string{
		{"PnL (USD)", totals.PnL.Round(0).String()},
		{"PnL (converted)", money(totals.PnLConverted)},
		{"Partner share", money(totals.PartnerShare)},
		{"Net after partner", money(totals.NetAfterPartner)},
	}
	if g := s.SelectedGroup(); g != "" {
		rows = append(rows, []string{"Commission " + g, money(s.TotalCommission(g))})
	}
	rows = append(rows, []string{"Grand total", money(s.GrandTotal())})

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header: []string{"Figure", "Amount"},
		Rows:   rows,
	})

	if confirmed := s.ConfirmedGroups(); len(confirmed) > 0 {
		doc.H2("Confirmed groups")
		doc.BulletList(confirmed...)
	}

	return doc.String()
}
