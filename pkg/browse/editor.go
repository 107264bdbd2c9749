package browse

import (
	"context"
	"errors"
	"fmt"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// Editor operation errors.
var (
	ErrFieldNotEditable = errors.New("field is not editable")
	ErrEditorDetached   = errors.New("editor is detached from the session")
)

// Editor holds the working copy of the selected record: a clone independent
// of the session snapshot, so local edits never mutate the authoritative
// RecordSet. Commits write through the source and then refresh the session.
type Editor struct {
	session *Session
	id      string
	working types.Record
	dirty   bool
}

func newEditor(s *Session, rec types.Record) *Editor {
	return &Editor{session: s, id: rec.ID, working: rec.Clone()}
}

// ID returns the id of the record being edited. The id is immutable.
func (e *Editor) ID() string { return e.id }

// Record returns a copy of the working copy as it currently stands,
// including uncommitted edits.
func (e *Editor) Record() types.Record { return e.working.Clone() }

// Dirty reports whether the working copy has uncommitted edits.
func (e *Editor) Dirty() bool { return e.dirty }

// SetField applies a local edit to the working copy. Nothing is sent to the
// backend until CommitAll. Status edits are validated against the status
// enum; other fields must be editable per the schema.
func (e *Editor) SetField(name string, value any) error {
	if name == "status" {
		status, ok := value.(string)
		if !ok || !types.IsValidStatus(status) {
			return types.ErrInvalidStatus
		}
		e.working.Status = status
		e.dirty = true
		return nil
	}
	if !e.session.schema.IsEditable(name) {
		return fmt.Errorf("%w: %s", ErrFieldNotEditable, name)
	}
	if e.working.Fields == nil {
		e.working.Fields = make(map[string]any)
	}
	e.working.Fields[name] = value
	e.dirty = true
	return nil
}

// CommitStatus sends only the status change to the backend immediately, with
// no staging, then refreshes the session. The working copy reflects the new
// status as soon as the write succeeds; the authoritative list row updates
// once the refresh completes. A rejected write leaves the working copy and
// the snapshot untouched.
func (e *Editor) CommitStatus(ctx context.Context, status string) error {
	if e.detached() {
		return ErrEditorDetached
	}
	if !types.IsValidStatus(status) {
		return types.ErrInvalidStatus
	}
	if err := e.session.source.UpdateStatus(ctx, e.id, status); err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	e.working.Status = status
	return e.session.Refresh(ctx)
}

// CommitAll sends the full working copy to the backend as an update, then
// refreshes. On success the working copy is replaced by the refreshed record
// with the same id, if still present, so subsequent edits start from
// server-confirmed state. On failure the working copy is retained unchanged
// so the user does not lose input.
func (e *Editor) CommitAll(ctx context.Context) error {
	if e.detached() {
		return ErrEditorDetached
	}
	if err := e.session.source.UpdateRecord(ctx, e.id, e.payload()); err != nil {
		return fmt.Errorf("updating record: %w", err)
	}
	if err := e.session.Refresh(ctx); err != nil {
		return err
	}
	if refreshed, ok := e.session.find(e.id); ok {
		e.working = refreshed.Clone()
		e.dirty = false
	}
	return nil
}

// payload gathers every editable field from the working copy, plus the
// status, into the update body.
func (e *Editor) payload() map[string]any {
	fields := make(map[string]any, len(e.working.Fields)+1)
	for _, name := range e.session.schema.EditableFields {
		if v, ok := e.working.Fields[name]; ok {
			fields[name] = v
		}
	}
	fields["status"] = e.working.Status
	return fields
}

// detached reports whether the session has moved on from this editor, either
// by reselection or because the record vanished on refresh. A detached
// editor refuses commits rather than writing to a record nobody is viewing.
func (e *Editor) detached() bool {
	return e.session == nil || e.session.editor != e
}
