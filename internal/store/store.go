// Package store implements the SQLite-backed report store used as the
// reference backend behind the REST boundary. Records live in a single
// reports table keyed by report type, with the domain fields as a JSON
// payload; the browsing engine never queries it directly.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kilnworks/safetydesk/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Store lifecycle errors.
var (
	ErrDetached        = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Backend owns the SQLite connection for one data directory and hands out
// per-report-type accessors.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	dataDir  string
	db       *sql.DB
}

// NewBackend creates a detached backend; call Attach before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens or creates the database under dataDir and applies the schema.
// Existing data is preserved. Returns ErrAlreadyAttached if called while
// attached.
func (b *Backend) Attach(dataDir string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return ErrAlreadyAttached
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "safetydesk.db"))
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.dataDir = dataDir
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent; after Detach all report
// operations return ErrDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// Reports returns the accessor for one report type. Returns
// types.ErrUnknownReportType for unregistered names.
func (b *Backend) Reports(reportType string) (*Reports, error) {
	if _, err := types.SchemaFor(reportType); err != nil {
		return nil, err
	}
	return &Reports{backend: b, reportType: reportType}, nil
}

// newUUID generates a UUID v7 string for report and attachment ids.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
