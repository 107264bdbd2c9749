package browse

import (
	"context"
	"fmt"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// Session orchestrates one report type's view state: the record snapshot,
// search text, column filters, sort order, and the single selection driving
// the detail editor. All reads derive from the snapshot; all writes go
// through the source followed by a refresh, so the server stays the sole
// source of truth.
//
// Session is not safe for concurrent use. Every mutation happens
// synchronously in response to a discrete user event.
type Session struct {
	schema  types.Schema
	source  types.RecordSource
	records []types.Record

	search  string
	filters *Registry
	sort    SortState

	selectedID string
	editor     *Editor

	fetchErr error
	loaded   bool
}

// NewSession creates a session over the source with the schema's default
// sort. Call Load before reading records.
func NewSession(source types.RecordSource, schema types.Schema) *Session {
	return &Session{
		schema:  schema,
		source:  source,
		filters: NewRegistry(schema),
		sort:    DefaultSort(schema),
	}
}

// Schema returns the report-type schema the session is parameterized by.
func (s *Session) Schema() types.Schema { return s.schema }

// Load performs the initial fetch.
func (s *Session) Load(ctx context.Context) error {
	return s.Refresh(ctx)
}

// Loaded reports whether an initial fetch has succeeded.
func (s *Session) Loaded() bool { return s.loaded }

// Refresh replaces the record snapshot wholesale from the source. Filters,
// sort, and search persist across refreshes. If the selected record is no
// longer present in the new snapshot the selection is cleared; otherwise the
// detail view rebinds to the refreshed record while any editor working copy
// is left alone.
//
// A failed fetch keeps the previous snapshot, filters, sort, and selection
// intact and records a transient error readable via Err.
func (s *Session) Refresh(ctx context.Context) error {
	records, err := s.source.List(ctx)
	if err != nil {
		s.fetchErr = fmt.Errorf("fetching records: %w", err)
		return s.fetchErr
	}
	s.fetchErr = nil
	s.loaded = true
	s.records = records

	if s.selectedID != "" {
		if _, ok := s.find(s.selectedID); !ok {
			// Deleted server-side while selected: a normal lifecycle
			// transition, not a failure.
			s.selectedID = ""
			s.editor = nil
		}
	}
	return nil
}

// Err returns the transient error from the last failed fetch, or nil after a
// successful one.
func (s *Session) Err() error { return s.fetchErr }

// Records returns the full unfiltered snapshot. Filter dropdown domains are
// derived from this, not from VisibleRecords.
func (s *Session) Records() []types.Record { return s.records }

// VisibleRecords derives the displayable rows: search, then column filters,
// then sort. Recomputed on every call; never cached across mutations.
func (s *Session) VisibleRecords() []types.Record {
	filtered := Filter(s.records, s.search, s.filters.Selections(), s.schema)
	return Sort(filtered, s.sort.Field, s.sort.Direction, s.schema)
}

// SetSearch replaces the free-text search term.
func (s *Session) SetSearch(term string) { s.search = term }

// Search returns the current search term.
func (s *Session) Search() string { return s.search }

// Filters returns the session's column filter registry.
func (s *Session) Filters() *Registry { return s.filters }

// SortBy handles a click on the given column header: the current sort field
// flips direction, a new field sorts ascending.
func (s *Session) SortBy(field string) { s.sort.Toggle(field) }

// SetSort restores a sort state wholesale, e.g. when a view is reopened
// with its previous sort.
func (s *Session) SetSort(state SortState) { s.sort = state }

// Sort returns the current sort state.
func (s *Session) Sort() SortState { return s.sort }

// Select sets the selection to id and opens a fresh detail editor on that
// record, silently discarding any unsaved edits in the previous one. Unknown
// ids are a no-op; the return value reports whether the selection changed.
func (s *Session) Select(id string) bool {
	rec, ok := s.find(id)
	if !ok {
		return false
	}
	s.selectedID = id
	s.editor = newEditor(s, rec)
	return true
}

// ClearSelection closes the detail panel. Any refresh already in flight
// still completes but will not reopen the cleared selection.
func (s *Session) ClearSelection() {
	s.selectedID = ""
	s.editor = nil
}

// SelectedID returns the selected record id, or "" when nothing is selected.
func (s *Session) SelectedID() string { return s.selectedID }

// Selected returns the selected record from the authoritative snapshot.
func (s *Session) Selected() (types.Record, bool) {
	if s.selectedID == "" {
		return types.Record{}, false
	}
	return s.find(s.selectedID)
}

// Editor returns the detail editor for the selection, or nil when nothing is
// selected.
func (s *Session) Editor() *Editor { return s.editor }

// Create adds a new record through the source and refreshes on success. The
// caller clears its ad-hoc creation state when Create returns nil.
func (s *Session) Create(ctx context.Context, fields map[string]any, attachment *types.Attachment) (string, error) {
	id, err := s.source.Create(ctx, fields, attachment)
	if err != nil {
		return "", fmt.Errorf("creating record: %w", err)
	}
	if err := s.Refresh(ctx); err != nil {
		return id, err
	}
	return id, nil
}

// find returns the record with the given id from the snapshot.
func (s *Session) find(id string) (types.Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return types.Record{}, false
}
