package types

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Record is one submitted report as returned by the backend: a unique ID, a
// status from the small status enum, and an opaque field map. Field values
// are strings, bools, numbers, or ordered string lists (multi-valued fields
// such as report types or additional observers).
type Record struct {
	ID     string
	Status string
	Fields map[string]any
}

// Record operation errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidID   = errors.New("invalid record ID")
	ErrInvalidData = errors.New("invalid record data")
)

// Value returns the record's value for the named field coerced to a string,
// or the empty string if the field is absent. The reserved names "id" and
// "status" resolve to the corresponding struct fields.
func (r Record) Value(name string) string {
	switch name {
	case "id":
		return r.ID
	case "status":
		return r.Status
	}
	return coerceString(r.Fields[name])
}

// coerceString renders a field value the way the list view displays it.
func coerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case []string:
		return strings.Join(x, ", ")
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			parts = append(parts, coerceString(e))
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// Clone returns a deep copy of the record. String-list field values are
// copied so edits to the clone never leak into the original.
func (r Record) Clone() Record {
	out := Record{ID: r.ID, Status: r.Status}
	if r.Fields == nil {
		return out
	}
	out.Fields = make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		switch x := v.(type) {
		case []string:
			out.Fields[k] = append([]string(nil), x...)
		case []any:
			out.Fields[k] = append([]any(nil), x...)
		default:
			out.Fields[k] = v
		}
	}
	return out
}

// MarshalJSON renders the record as a flat object with "id" and "status"
// alongside the domain fields, matching the backend wire format.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		flat[k] = v
	}
	flat["id"] = r.ID
	flat["status"] = r.Status
	return json.Marshal(flat)
}

// UnmarshalJSON accepts the flat wire object and pulls "id" and "status"
// out of the field map.
func (r *Record) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	if id, ok := flat["id"].(string); ok {
		r.ID = id
	}
	if status, ok := flat["status"].(string); ok {
		r.Status = status
	}
	delete(flat, "id")
	delete(flat, "status")
	r.Fields = flat
	return nil
}
