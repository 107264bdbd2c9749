package types

// Report type names. Each names a Schema registered below and a route on the
// REST backend.
const (
	ReportBBS        = "bbs"
	ReportNearMiss   = "nearmiss"
	ReportInspection = "inspection"
	ReportEmployee   = "employee"
	ReportHuddle     = "huddle"
)

// builtinSchemas configures the browsing engine for each report type. Field
// sets mirror the admin views: the search haystack, the filterable columns,
// and the editable detail fields differ per type while the engine stays
// generic.
var builtinSchemas = map[string]Schema{
	ReportBBS: {
		Name:  ReportBBS,
		Title: "BBS Observation Records",
		ListColumns: []string{
			"id", "date", "observer_name", "area", "shift", "job_task", "leader_name", "status",
		},
		SearchFields: []string{
			"id", "date", "observer_id", "observer_name", "area", "shift",
			"job_area", "job_task", "status", "leader_name",
		},
		FilterColumns: []string{"status", "leader_name", "area", "shift", "followup_contact"},
		DateFields:    []string{"date"},
		EditableFields: []string{
			"observer_id", "observer_name", "date", "additional_observers",
			"area", "shift", "job_area", "job_task", "leader_name",
			"ppe_safe", "ppe_concern", "ppe_comments",
			"position_safe", "position_concern", "position_comments",
			"tools_safe", "tools_concern", "tools_comments",
			"conditions_safe", "conditions_concern", "conditions_comments",
			"unsafe_about_activity", "promote_safety",
			"team_member_comments", "observer_comments", "followup_contact",
		},
		DefaultSortField:      "date",
		DefaultSortDescending: true,
	},
	ReportNearMiss: {
		Name:  ReportNearMiss,
		Title: "Near Miss Reports",
		ListColumns: []string{
			"id", "date", "department", "location", "shift", "leader_id", "report_types", "status",
		},
		SearchFields: []string{
			"id", "department", "location", "date", "shift", "leader_id",
			"report_types", "status",
		},
		FilterColumns: []string{"department", "status", "leader_id", "shift"},
		DateFields:    []string{"date"},
		EditableFields: []string{
			"department", "location", "date", "additional_team", "report_types",
			"description", "actions_taken", "suggestion", "followup",
			"shift", "leader_id",
		},
		DefaultSortField:      "date",
		DefaultSortDescending: true,
	},
	ReportInspection: {
		Name:  ReportInspection,
		Title: "Inspection Records",
		ListColumns: []string{
			"id", "date", "inspector_name", "department", "area", "shift", "status",
		},
		SearchFields: []string{
			"id", "inspector_name", "department", "area", "shift",
		},
		FilterColumns: []string{"department", "area", "shift", "status"},
		DateFields:    []string{"date"},
		EditableFields: []string{
			"inspector_name", "date", "department", "area", "shift",
			"findings", "corrective_actions",
		},
		DefaultSortField:      "date",
		DefaultSortDescending: true,
	},
	ReportEmployee: {
		Name:  ReportEmployee,
		Title: "Employee Directory",
		ListColumns: []string{
			"id", "employee_id", "name", "department", "role", "shift", "status",
		},
		SearchFields: []string{
			"id", "employee_id", "name", "department", "role", "status",
		},
		FilterColumns: []string{"department", "role", "shift", "status"},
		DateFields:    []string{"hire_date"},
		EditableFields: []string{
			"employee_id", "name", "department", "role", "shift", "hire_date",
		},
		DefaultSortField:      "name",
		DefaultSortDescending: false,
	},
	ReportHuddle: {
		Name:  ReportHuddle,
		Title: "Safety Huddle Acknowledgments",
		ListColumns: []string{
			"id", "year", "week", "date", "department", "leader_name", "status",
		},
		SearchFields: []string{
			"id", "leader_name", "department", "week", "status",
		},
		FilterColumns: []string{"department", "leader_name", "status"},
		DateFields:    []string{"date"},
		EditableFields: []string{
			"year", "week", "date", "department", "leader_name", "attendees", "topics",
		},
		DefaultSortField:      "date",
		DefaultSortDescending: true,
	},
}

// schemaOrder fixes the order returned by Schemas.
var schemaOrder = []string{
	ReportBBS, ReportNearMiss, ReportInspection, ReportEmployee, ReportHuddle,
}

// SchemaFor returns the Schema registered under name.
// Returns ErrUnknownReportType for unregistered names.
func SchemaFor(name string) (Schema, error) {
	s, ok := builtinSchemas[name]
	if !ok {
		return Schema{}, ErrUnknownReportType
	}
	return s, nil
}

// Schemas returns all registered schemas in display order.
func Schemas() []Schema {
	out := make([]Schema, 0, len(schemaOrder))
	for _, name := range schemaOrder {
		out = append(out, builtinSchemas[name])
	}
	return out
}
