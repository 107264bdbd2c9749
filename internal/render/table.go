// Package render prints record tables and detail panels for the CLI.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/kilnworks/safetydesk/internal/export"
	"github.com/kilnworks/safetydesk/pkg/browse"
	"github.com/kilnworks/safetydesk/pkg/types"
)

// statusColors maps each status to its display color.
var statusColors = map[string]*color.Color{
	types.StatusOpen:     color.New(color.FgHiYellow),
	types.StatusInReview: color.New(color.FgHiCyan),
	types.StatusClosed:   color.New(color.FgHiGreen),
}

// Table writes the visible records as an aligned table with the schema's
// list columns, ending with a row count.
func Table(w io.Writer, records []types.Record, schema types.Schema) {
	if len(records) == 0 {
		faint := color.New(color.Faint, color.Italic)
		_, _ = faint.Fprintln(w, "no records")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 40

	header := make([]interface{}, len(schema.ListColumns))
	for i, col := range schema.ListColumns {
		header[i] = export.Header(col)
	}
	table.AddRow(header...)

	for _, rec := range records {
		row := make([]interface{}, len(schema.ListColumns))
		for i, col := range schema.ListColumns {
			v := rec.Value(col)
			if col == "id" {
				v = shortID(v)
			}
			if col == "status" {
				if c, ok := statusColors[v]; ok {
					row[i] = c.Sprint(v)
					continue
				}
			}
			row[i] = v
		}
		table.AddRow(row...)
	}

	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "Total: %d record(s)\n", len(records))
}

// Detail writes one record's fields as a label/value panel, list columns
// first, then the remaining editable fields.
func Detail(w io.Writer, rec types.Record, schema types.Schema) {
	title := color.New(color.Bold, color.Underline)
	_, _ = title.Fprintf(w, "%s #%s\n", schema.Title, shortID(rec.ID))

	table := uitable.New()
	table.MaxColWidth = 70
	table.Wrap = true

	seen := map[string]bool{"id": true}
	for _, col := range schema.ListColumns {
		if seen[col] {
			continue
		}
		seen[col] = true
		table.AddRow(export.Header(col)+":", rec.Value(col))
	}
	for _, field := range schema.EditableFields {
		if seen[field] {
			continue
		}
		seen[field] = true
		table.AddRow(export.Header(field)+":", rec.Value(field))
	}
	fmt.Fprintln(w, table)
}

// Filters summarizes the active column filters and search term above the
// table, mirroring the filter badges of the admin views.
func Filters(w io.Writer, search string, registry *browse.Registry, schema types.Schema) {
	faint := color.New(color.Faint)
	if search != "" {
		_, _ = faint.Fprintf(w, "search: %q\n", search)
	}
	for _, col := range schema.FilterColumns {
		if n := registry.Count(col); n > 0 {
			_, _ = faint.Fprintf(w, "%s: %v\n", export.Header(col), registry.Selected(col))
		}
	}
}

// shortID truncates a UUID to its first 8 characters for readability.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
