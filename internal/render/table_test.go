package render

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/kilnworks/safetydesk/pkg/browse"
	"github.com/kilnworks/safetydesk/pkg/types"
)

var renderSchema = types.Schema{
	Name:           "test",
	Title:          "Test Records",
	ListColumns:    []string{"id", "date", "leader_name", "status"},
	FilterColumns:  []string{"status", "leader_name"},
	EditableFields: []string{"leader_name", "notes"},
}

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestTable(t *testing.T) {
	records := []types.Record{
		{ID: "0198b2f0-1111-7000-8000-000000000000", Status: types.StatusOpen, Fields: map[string]any{
			"date": "2024-01-05", "leader_name": "Dana Whitfield",
		}},
		{ID: "0198b2f0-2222-7000-8000-000000000000", Status: types.StatusClosed, Fields: map[string]any{
			"date": "2024-01-20", "leader_name": "Luis Ortega",
		}},
	}

	var buf bytes.Buffer
	Table(&buf, records, renderSchema)
	out := buf.String()

	assert.Contains(t, out, "Leader Name")
	// IDs are truncated for readability.
	assert.Contains(t, out, "0198b2f0")
	assert.NotContains(t, out, "0198b2f0-1111")
	assert.Contains(t, out, "Dana Whitfield")
	assert.Contains(t, out, "Total: 2 record(s)")
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, nil, renderSchema)
	assert.Contains(t, buf.String(), "no records")
}

func TestDetail(t *testing.T) {
	rec := types.Record{ID: "r1", Status: types.StatusOpen, Fields: map[string]any{
		"date": "2024-01-05", "leader_name": "Dana Whitfield", "notes": "relocated pallet",
	}}

	var buf bytes.Buffer
	Detail(&buf, rec, renderSchema)
	out := buf.String()

	assert.Contains(t, out, "Test Records #r1")
	assert.Contains(t, out, "Leader Name:")
	assert.Contains(t, out, "relocated pallet")
}

func TestFilters(t *testing.T) {
	reg := browse.NewRegistry(renderSchema)
	reg.Toggle("status", types.StatusOpen)

	var buf bytes.Buffer
	Filters(&buf, "kiln", reg, renderSchema)
	out := buf.String()

	assert.Contains(t, out, `search: "kiln"`)
	assert.Contains(t, out, "Status: [Open]")
}

func TestFiltersQuietWhenInactive(t *testing.T) {
	var buf bytes.Buffer
	Filters(&buf, "", browse.NewRegistry(renderSchema), renderSchema)
	assert.Empty(t, buf.String())
}
