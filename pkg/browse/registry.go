package browse

import (
	"sort"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// Registry tracks the Excel-style column filters for one view: which values
// each filterable column accepts, and which filter dropdown (at most one) is
// currently open.
type Registry struct {
	schema   types.Schema
	selected map[string]map[string]bool
	open     string
}

// NewRegistry returns an empty Registry for the schema's filter columns.
func NewRegistry(schema types.Schema) *Registry {
	return &Registry{
		schema:   schema,
		selected: make(map[string]map[string]bool),
	}
}

// Domain returns the distinct non-empty values present for the column,
// sorted ascending. It is derived from the full record set, never the
// filtered subset, so selecting a value in one filter never removes
// candidates from another filter's dropdown.
func (r *Registry) Domain(records []types.Record, column string) []string {
	seen := make(map[string]bool)
	for _, rec := range records {
		if v := rec.Value(column); v != "" {
			seen[v] = true
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Toggle adds value to the column's accepted set if absent, removes it if
// present.
func (r *Registry) Toggle(column, value string) {
	set := r.selected[column]
	if set == nil {
		set = make(map[string]bool)
		r.selected[column] = set
	}
	if set[value] {
		delete(set, value)
	} else {
		set[value] = true
	}
}

// IsSelected reports whether the column's accepted set contains value.
func (r *Registry) IsSelected(column, value string) bool {
	return r.selected[column][value]
}

// Selected returns the column's accepted values sorted ascending.
func (r *Registry) Selected(column string) []string {
	set := r.selected[column]
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of accepted values for the column, shown on the
// filter button as an active-filter badge.
func (r *Registry) Count(column string) int {
	return len(r.selected[column])
}

// Selections snapshots every column's accepted set for the filter pipeline.
func (r *Registry) Selections() Selections {
	out := make(Selections, len(r.selected))
	for column := range r.selected {
		out[column] = r.Selected(column)
	}
	return out
}

// Active reports whether any column restricts the view.
func (r *Registry) Active() bool {
	for _, set := range r.selected {
		if len(set) > 0 {
			return true
		}
	}
	return false
}

// Clear empties the accepted set for one column.
func (r *Registry) Clear(column string) {
	delete(r.selected, column)
}

// ClearAll empties every column's accepted set and closes any open filter
// dropdown. Search text and sort state are untouched.
func (r *Registry) ClearAll() {
	r.selected = make(map[string]map[string]bool)
	r.open = ""
}

// ToggleDropdown opens the column's filter dropdown, closing whichever was
// open; toggling the open column closes it.
func (r *Registry) ToggleDropdown(column string) {
	if r.open == column {
		r.open = ""
		return
	}
	r.open = column
}

// Dismiss closes the open dropdown. Callers invoke it for any interaction
// outside the open dropdown's region.
func (r *Registry) Dismiss() {
	r.open = ""
}

// OpenDropdown returns the column whose dropdown is open, or "" when none
// is.
func (r *Registry) OpenDropdown() string {
	return r.open
}
