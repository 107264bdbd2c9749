// Package export renders the browsing engine's output for downstream
// consumers: Excel workbooks, CSV files, and plain-text email bodies. It
// reads visible records but never feeds back into the engine.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// WriteExcel writes the records as a one-sheet workbook with the schema's
// list columns as the header row.
func WriteExcel(w io.Writer, records []types.Record, schema types.Schema) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for ci, col := range schema.ListColumns {
		cell, err := excelize.CoordinatesToCellName(ci+1, 1)
		if err != nil {
			return fmt.Errorf("naming header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, Header(col)); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for ri, rec := range records {
		for ci, col := range schema.ListColumns {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return fmt.Errorf("naming cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, rec.Value(col)); err != nil {
				return fmt.Errorf("writing row %d: %w", ri+1, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Header turns a field key into a column heading: "leader_name" becomes
// "Leader Name", "id" becomes "ID".
func Header(col string) string {
	if col == "id" {
		return "ID"
	}
	words := strings.Split(col, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		if w == "id" {
			words[i] = "ID"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
