package recon

// Table is the serialization contract of the export boundary: a header row,
// one row per enriched account, and a trailing totals row. Column order and
// the presence of the totals row are load-bearing for downstream consumers.
type Table struct {
	Header []string
	Rows   [][]string
	Totals []string
}

// ReportHeader is the fixed column layout of the report table.
var ReportHeader = []string{
	"Login", "Name", "Credit", "Equity",
	"PnL(USD)", "PnL(converted)", "Partner%", "PartnerShare", "NetTotal", "Group",
}

// ReportTable lays out the session's filtered enriched accounts in the
// export contract. Display columns are rounded to the nearest integer;
// exact decimals stay inside the session.
func ReportTable(s *Session) Table {
	t := Table{Header: ReportHeader}
	var totals Totals
	for e := range s.Enriched() {
		totals = totals.Add(e)
		t.Rows = append(t.Rows, []string{
			e.Login,
			e.Name,
			e.Credit.Round(0).String(),
			e.Equity.Round(0).String(),
			e.PnL.Round(0).String(),
			e.PnLConverted.Round(0).String(),
			e.PartnerPercent.String(),
			e.PartnerShare.Round(0).String(),
			e.NetAfterPartner.Round(0).String(),
			e.GroupName,
		})
	}
	t.Totals = []string{
		"Totals", "", "", "",
		totals.PnL.Round(0).String(),
		totals.PnLConverted.Round(0).String(),
		"",
		totals.PartnerShare.Round(0).String(),
		totals.NetAfterPartner.Round(0).String(),
		"",
	}
	return t
}
