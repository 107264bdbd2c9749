package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kilnworks/safetydesk/pkg/types"
)

var exportSchema = types.Schema{
	Name:           "test",
	Title:          "Test Records",
	ListColumns:    []string{"id", "date", "leader_name", "status"},
	EditableFields: []string{"leader_name", "notes", "date"},
}

func exportRecords() []types.Record {
	return []types.Record{
		{ID: "r1", Status: types.StatusOpen, Fields: map[string]any{
			"date": "2024-01-05", "leader_name": "Dana Whitfield", "notes": "relocated pallet",
		}},
		{ID: "r2", Status: types.StatusClosed, Fields: map[string]any{
			"date": "2024-01-20", "leader_name": "Luis Ortega",
		}},
	}
}

func TestHeader(t *testing.T) {
	tests := []struct {
		col  string
		want string
	}{
		{col: "id", want: "ID"},
		{col: "leader_name", want: "Leader Name"},
		{col: "observer_id", want: "Observer ID"},
		{col: "status", want: "Status"},
		{col: "date", want: "Date"},
	}
	for _, tt := range tests {
		t.Run(tt.col, func(t *testing.T) {
			assert.Equal(t, tt.want, Header(tt.col))
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportRecords(), exportSchema))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Date", "Leader Name", "Status"}, rows[0])
	assert.Equal(t, []string{"r1", "2024-01-05", "Dana Whitfield", "Open"}, rows[1])
	assert.Equal(t, []string{"r2", "2024-01-20", "Luis Ortega", "Closed"}, rows[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, exportSchema))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// Header only.
	require.Len(t, rows, 1)
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, exportRecords(), exportSchema))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Date", "Leader Name", "Status"}, rows[0])
	assert.Equal(t, []string{"r1", "2024-01-05", "Dana Whitfield", "Open"}, rows[1])
	assert.Equal(t, []string{"r2", "2024-01-20", "Luis Ortega", "Closed"}, rows[2])
}

func TestEmail(t *testing.T) {
	subject, body := Email(exportRecords()[0], exportSchema)

	assert.Equal(t, "Test Records #r1", subject)
	assert.Contains(t, body, "TEST RECORDS")
	assert.Contains(t, body, "ID: r1")
	assert.Contains(t, body, "Leader Name: Dana Whitfield")
	assert.Contains(t, body, "Status: Open")
	// Editable fields outside the list columns land in the detail block.
	assert.Contains(t, body, "Notes:\nrelocated pallet")
	// List columns are not repeated in the detail block.
	assert.Equal(t, 1, strings.Count(body, "Dana Whitfield"))
}

func TestEmailEmptyFieldsDash(t *testing.T) {
	rec := types.Record{ID: "r3", Status: types.StatusOpen}
	_, body := Email(rec, exportSchema)
	assert.Contains(t, body, "Date: —")
	assert.Contains(t, body, "Notes:\n—")
}

func TestMailtoURL(t *testing.T) {
	got := MailtoURL("Test Records #r1", "line one\nline two")

	assert.True(t, strings.HasPrefix(got, "mailto:?subject="), got)
	// Spaces are percent-encoded, never "+".
	assert.NotContains(t, got, "+")
	assert.Contains(t, got, "Test%20Records%20%23r1")
	assert.Contains(t, got, "line%20one%0Aline%20two")
}
