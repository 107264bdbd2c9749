// Shared helpers for safetydesk CLI commands.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/kilnworks/safetydesk/internal/rest"
	"github.com/kilnworks/safetydesk/internal/store"
	"github.com/kilnworks/safetydesk/pkg/browse"
	"github.com/kilnworks/safetydesk/pkg/types"
)

// validReportTypes is a comma-separated list for error messages.
var validReportTypes = func() string {
	names := make([]string, 0)
	for _, s := range types.Schemas() {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}()

// newSource builds the RecordSource for one report type from the loaded
// config: a REST client when backend_url is set, otherwise the local store.
// The caller must invoke the returned cleanup.
func newSource(reportType string) (types.RecordSource, func() error, error) {
	if _, err := types.SchemaFor(reportType); err != nil {
		return nil, nil, fmt.Errorf("unknown report type %q (valid: %s)", reportType, validReportTypes)
	}

	if cfg.BackendURL != "" {
		return rest.NewClient(cfg.BackendURL, reportType), func() error { return nil }, nil
	}

	backend := store.NewBackend()
	if err := backend.Attach(cfg.DataDir); err != nil {
		return nil, nil, fmt.Errorf("attaching store: %w", err)
	}
	reports, err := backend.Reports(reportType)
	if err != nil {
		backend.Detach()
		return nil, nil, err
	}
	return reports, backend.Detach, nil
}

// newSession builds and loads a browsing session for one report type.
func newSession(ctx context.Context, reportType string) (*browse.Session, func() error, error) {
	source, cleanup, err := newSource(reportType)
	if err != nil {
		return nil, nil, err
	}
	schema, err := types.SchemaFor(reportType)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	session := browse.NewSession(source, schema)
	if err := session.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return session, cleanup, nil
}

// parseFieldValue interprets a --set value: bool literals become bools,
// comma-separated values become string lists, everything else stays a
// string.
func parseFieldValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				out = append(out, t)
			}
		}
		return out
	}
	return raw
}

// parseSetFlags turns repeated "field=value" flags into a field map.
func parseSetFlags(sets []string) (map[string]any, error) {
	fields := make(map[string]any, len(sets))
	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, want field=value", s)
		}
		fields[name] = parseFieldValue(value)
	}
	return fields, nil
}

// applyFilterFlags turns repeated "column=value" flags into toggles on the
// session's filter registry.
func applyFilterFlags(session *browse.Session, filters []string) error {
	schema := session.Schema()
	for _, f := range filters {
		column, value, ok := strings.Cut(f, "=")
		if !ok || column == "" || value == "" {
			return fmt.Errorf("invalid --filter %q, want column=value", f)
		}
		if !schema.HasFilterColumn(column) {
			return fmt.Errorf("column %q has no filter (valid: %s)", column, strings.Join(schema.FilterColumns, ", "))
		}
		session.Filters().Toggle(column, value)
	}
	return nil
}
