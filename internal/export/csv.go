package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// WriteCSV writes the records with the schema's list columns as the header
// row.
func WriteCSV(w io.Writer, records []types.Record, schema types.Schema) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(schema.ListColumns))
	for i, col := range schema.ListColumns {
		header[i] = Header(col)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	row := make([]string, len(schema.ListColumns))
	for _, rec := range records {
		for i, col := range schema.ListColumns {
			row[i] = rec.Value(col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
