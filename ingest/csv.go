package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etawil/recon"
)

// CSV fallbacks for both shapes, for setups without Excel exports. Same
// header-driven layout as the xlsx reader.

// ReadRecordsCSV reads header-named raw records from CSV.
func ReadRecordsCSV(r io.Reader) ([]map[string]any, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // hand-edited files have ragged rows

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	var records []map[string]any
	for _, row := range rows[1:] {
		rec := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteReportCSV writes the report table as CSV, honoring the export
// contract: header, one row per account, trailing totals row.
func WriteReportCSV(w io.Writer, table recon.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	if err := cw.Write(table.Totals); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
