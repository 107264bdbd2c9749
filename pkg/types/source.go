package types

import "context"

// RecordSource fetches and writes the full record collection for one report
// type. It owns no filtering or sorting; the browsing engine composes those
// on top. List returns every record visible to the admin role, unpaginated.
type RecordSource interface {
	// List returns the full collection as a fresh snapshot.
	List(ctx context.Context) ([]Record, error)

	// UpdateStatus sends a partial update changing only the status.
	// It succeeds or fails atomically; on failure the caller keeps its
	// local state untouched.
	UpdateStatus(ctx context.Context, id, status string) error

	// UpdateRecord sends a full-record update of the given fields.
	UpdateRecord(ctx context.Context, id string, fields map[string]any) error

	// Create adds a new record. The attachment is an opaque reference
	// passed through unmodified; nil means no attachment. Returns the new
	// record's ID.
	Create(ctx context.Context, fields map[string]any, attachment *Attachment) (string, error)
}

// Attachment is a write-once file reference submitted with a new record.
// Attachments are not part of the editable working copy after creation.
type Attachment struct {
	Filename string
	Data     []byte
}
