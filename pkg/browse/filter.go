// Package browse implements the record-browsing engine shared by every admin
// view: free-text search, Excel-style per-column filters, stable type-aware
// sorting, and the session and detail-editor state machines that compose
// them over a RecordSource.
package browse

import (
	"strings"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// Selections maps a column name to its accepted values. An absent or empty
// entry places no restriction on that column.
type Selections map[string][]string

// Filter applies free-text search and column filters to records, in that
// order. Both are independent predicates; a record survives only if it
// passes each. The input slice is never mutated.
func Filter(records []types.Record, search string, selected Selections, schema types.Schema) []types.Record {
	out := applySearch(records, search, schema)
	return applyColumnFilters(out, selected)
}

// applySearch keeps records whose searchable fields, joined and lower-cased,
// contain the lower-cased search term as a substring. Empty or
// whitespace-only search text is a no-op.
func applySearch(records []types.Record, search string, schema types.Schema) []types.Record {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return records
	}
	out := make([]types.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(haystack(r, schema), term) {
			out = append(out, r)
		}
	}
	return out
}

// haystack concatenates the record's non-empty searchable field values.
func haystack(r types.Record, schema types.Schema) string {
	parts := make([]string, 0, len(schema.SearchFields))
	for _, f := range schema.SearchFields {
		if v := r.Value(f); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// applyColumnFilters keeps records that, for every column with a non-empty
// accepted set, carry one of the accepted values: AND across columns, OR
// within a column.
func applyColumnFilters(records []types.Record, selected Selections) []types.Record {
	if !anySelected(selected) {
		return records
	}
	out := make([]types.Record, 0, len(records))
	for _, r := range records {
		if passesColumnFilters(r, selected) {
			out = append(out, r)
		}
	}
	return out
}

func passesColumnFilters(r types.Record, selected Selections) bool {
	for column, accepted := range selected {
		if len(accepted) == 0 {
			continue
		}
		value := r.Value(column)
		found := false
		for _, a := range accepted {
			if a == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func anySelected(selected Selections) bool {
	for _, accepted := range selected {
		if len(accepted) > 0 {
			return true
		}
	}
	return false
}
