package types

import "errors"

// Schema parameterizes the browsing engine for one report type: which fields
// free-text search scans, which columns carry multi-select filters, which
// fields compare as dates, and which fields the detail editor may write.
// The four admin views differ only by their Schema.
type Schema struct {
	Name           string   // report type key, used in routes and CLI args
	Title          string   // human-readable heading
	ListColumns    []string // columns shown in the table view and exports
	SearchFields   []string // fields concatenated into the search haystack
	FilterColumns  []string // columns with Excel-style multi-select filters
	DateFields     []string // fields compared as timestamps when sorting
	EditableFields []string // fields the detail editor may change

	DefaultSortField      string
	DefaultSortDescending bool
}

// ErrUnknownReportType reports a schema lookup for an unregistered name.
var ErrUnknownReportType = errors.New("unknown report type")

// IsDateField reports whether the named field sorts as a date.
func (s Schema) IsDateField(name string) bool {
	for _, f := range s.DateFields {
		if f == name {
			return true
		}
	}
	return false
}

// IsEditable reports whether the detail editor may write the named field.
// Status is always editable through the status write path.
func (s Schema) IsEditable(name string) bool {
	if name == "status" {
		return true
	}
	for _, f := range s.EditableFields {
		if f == name {
			return true
		}
	}
	return false
}

// HasFilterColumn reports whether the named column carries a filter.
func (s Schema) HasFilterColumn(name string) bool {
	for _, c := range s.FilterColumns {
		if c == name {
			return true
		}
	}
	return false
}
