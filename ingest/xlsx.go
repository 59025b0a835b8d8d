package ingest

import (
	"fmt"

	"github.com/etawil/recon"
	"github.com/xuri/excelize/v2"
)

// ReadGroupsXLSX reads the partner mapping table from the first sheet of an
// xlsx workbook. The header row names the columns; rows shorter than the
// header are padded with empty cells.
func ReadGroupsXLSX(path string) ([]map[string]any, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open groups workbook %q: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("groups workbook %q has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheets[0], err)
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

// WriteReportXLSX writes the report table to an xlsx workbook, honoring the
// export contract: header, one row per account, trailing totals row.
func WriteReportXLSX(path string, table recon.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	write := func(rowIdx int, cells []string) error {
		for col, v := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := write(1, table.Header); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := write(i+2, row); err != nil {
			return err
		}
	}
	if err := write(len(table.Rows)+2, table.Totals); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save report workbook %q: %w", path, err)
	}
	return nil
}
