package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilnworks/safetydesk/pkg/browse"
	"github.com/kilnworks/safetydesk/pkg/types"
)

func TestParseFieldValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{name: "plain string", raw: "Kiln", want: "Kiln"},
		{name: "true literal", raw: "true", want: true},
		{name: "false literal", raw: "false", want: false},
		{name: "comma list", raw: "Safe, At-Risk", want: []string{"Safe", "At-Risk"}},
		{name: "list drops empty entries", raw: "a,,b,", want: []string{"a", "b"}},
		{name: "number stays a string", raw: "42", want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFieldValue(tt.raw))
		})
	}
}

func TestParseSetFlags(t *testing.T) {
	fields, err := parseSetFlags([]string{"area=Kiln", "followup=true", "notes=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"area":     "Kiln",
		"followup": true,
		"notes":    "a=b", // only the first = splits
	}, fields)

	_, err = parseSetFlags([]string{"no-equals"})
	assert.Error(t, err)
	_, err = parseSetFlags([]string{"=value"})
	assert.Error(t, err)
}

func TestApplyFilterFlags(t *testing.T) {
	schema, err := types.SchemaFor(types.ReportBBS)
	require.NoError(t, err)
	session := browse.NewSession(nil, schema)

	require.NoError(t, applyFilterFlags(session, []string{"status=Open", "area=Kiln"}))
	assert.Equal(t, []string{"Open"}, session.Filters().Selected("status"))
	assert.Equal(t, []string{"Kiln"}, session.Filters().Selected("area"))

	assert.Error(t, applyFilterFlags(session, []string{"job_task=Weld"}), "job_task carries no filter")
	assert.Error(t, applyFilterFlags(session, []string{"status"}))
}
