package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor(t *testing.T) {
	s, err := SchemaFor(ReportBBS)
	require.NoError(t, err)
	assert.Equal(t, ReportBBS, s.Name)
	assert.Equal(t, "date", s.DefaultSortField)
	assert.True(t, s.DefaultSortDescending)

	_, err = SchemaFor("incident")
	assert.ErrorIs(t, err, ErrUnknownReportType)
}

func TestSchemasOrder(t *testing.T) {
	var names []string
	for _, s := range Schemas() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{ReportBBS, ReportNearMiss, ReportInspection, ReportEmployee, ReportHuddle}, names)
}

func TestSchemaPredicates(t *testing.T) {
	s, err := SchemaFor(ReportBBS)
	require.NoError(t, err)

	assert.True(t, s.IsDateField("date"))
	assert.False(t, s.IsDateField("area"))

	assert.True(t, s.IsEditable("area"))
	assert.True(t, s.IsEditable("status"), "status is always editable")
	assert.False(t, s.IsEditable("id"))

	assert.True(t, s.HasFilterColumn("leader_name"))
	assert.False(t, s.HasFilterColumn("job_task"))
}

func TestSchemaRegistryConsistency(t *testing.T) {
	// Every filter column must be resolvable as a value the list view can
	// render, and every schema needs a default sort field.
	for _, s := range Schemas() {
		assert.NotEmpty(t, s.Title, s.Name)
		assert.NotEmpty(t, s.ListColumns, s.Name)
		assert.NotEmpty(t, s.SearchFields, s.Name)
		assert.NotEmpty(t, s.DefaultSortField, s.Name)
	}
}

func TestEmployeeDirectorySortsByName(t *testing.T) {
	s, err := SchemaFor(ReportEmployee)
	require.NoError(t, err)
	assert.Equal(t, "name", s.DefaultSortField)
	assert.False(t, s.DefaultSortDescending)
}
