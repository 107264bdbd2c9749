package browse

import (
	"sort"
	"strings"
	"time"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// Direction is a sort direction applied as a multiplier to the base
// three-way comparison.
type Direction int

// Sort directions.
const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// SortState is the current sort column and direction.
type SortState struct {
	Field     string
	Direction Direction
}

// Toggle adjusts the sort state for a click on the given column header:
// the currently-sorted field flips direction, a new field resets to
// ascending.
func (s *SortState) Toggle(field string) {
	if s.Field == field {
		s.Direction = -s.Direction
		return
	}
	s.Field = field
	s.Direction = Ascending
}

// DefaultSort returns the schema's initial sort state, typically the date
// column descending so the newest reports list first.
func DefaultSort(schema types.Schema) SortState {
	dir := Ascending
	if schema.DefaultSortDescending {
		dir = Descending
	}
	return SortState{Field: schema.DefaultSortField, Direction: dir}
}

// dateFormats are tried in order when a date field is compared. The backend
// writes ISO dates but imported records have carried US-style values.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
}

// Sort returns records ordered by the given field and direction. The sort is
// stable: records with equal keys keep their prior relative order, so row
// identity stays predictable under re-sorts. The input slice is not mutated.
//
// Date fields compare as parsed timestamps with unparsable values sorting
// earliest; numeric values compare numerically when both sides are numeric;
// everything else compares case-insensitively as strings.
func Sort(records []types.Record, field string, direction Direction, schema types.Schema) []types.Record {
	out := append([]types.Record(nil), records...)
	if field == "" {
		return out
	}
	mul := int(direction)
	sort.SliceStable(out, func(i, j int) bool {
		return compare(out[i], out[j], field, schema)*mul < 0
	})
	return out
}

// compare returns the base three-way comparison of two records on field,
// before the direction multiplier.
func compare(a, b types.Record, field string, schema types.Schema) int {
	if schema.IsDateField(field) {
		ta := parseDate(a.Value(field))
		tb := parseDate(b.Value(field))
		return ta.Compare(tb)
	}
	if na, ok := numericValue(a.Fields[field]); ok {
		if nb, ok := numericValue(b.Fields[field]); ok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}
	sa := strings.ToLower(a.Value(field))
	sb := strings.ToLower(b.Value(field))
	return strings.Compare(sa, sb)
}

// parseDate parses a date field value. Unparsable values return the zero
// time so they sort as earliest.
func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// numericValue extracts a raw numeric field value. Strings are not coerced;
// only values the backend delivered as numbers compare numerically.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
