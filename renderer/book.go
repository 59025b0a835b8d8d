package renderer

import (
	"bytes"

	"github.com/etawil/recon"
	md "github.com/nao1215/markdown"
)

// BookMarkdown renders the cross-group book: every ever-confirmed entry,
// the group's live book total and whether the entry still stands.
func BookMarkdown(s *recon.Session) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Book")

	var rows [][]string
	for e := range s.Book().Entries() {
		status := "stale"
		if s.IsConfirmed(e.Group) {
			status = "confirmed"
		}
		rows = append(rows, []string{
			e.Group,
			money(e.Amount),
			e.Kind.String(),
			money(s.BookTotal(e.Group)),
			status,
		})
	}
	if len(rows) == 0 {
		doc.PlainText("No confirmed groups yet.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Header: []string{"Group", "Booked", "Kind", "Current total", "Status"},
		Rows:   rows,
	})
	return doc.String()
}
