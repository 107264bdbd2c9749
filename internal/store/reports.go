package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// Reports provides record operations for a single report type. It satisfies
// types.RecordSource, so the CLI can browse an embedded store and the REST
// server can expose the same operations over HTTP.
type Reports struct {
	backend    *Backend
	reportType string
}

// List returns every record of this report type, newest first.
func (r *Reports) List(ctx context.Context) ([]types.Record, error) {
	r.backend.mu.RLock()
	defer r.backend.mu.RUnlock()
	if !r.backend.attached {
		return nil, ErrDetached
	}

	rows, err := r.backend.db.QueryContext(ctx,
		"SELECT report_id, status, fields FROM reports WHERE report_type = ? ORDER BY created_at DESC",
		r.reportType)
	if err != nil {
		return nil, fmt.Errorf("fetching reports: %w", err)
	}
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get retrieves one record by id.
// Returns types.ErrNotFound if no such record exists for this report type.
func (r *Reports) Get(ctx context.Context, id string) (types.Record, error) {
	r.backend.mu.RLock()
	defer r.backend.mu.RUnlock()
	if !r.backend.attached {
		return types.Record{}, ErrDetached
	}
	if id == "" {
		return types.Record{}, types.ErrInvalidID
	}

	row := r.backend.db.QueryRowContext(ctx,
		"SELECT report_id, status, fields FROM reports WHERE report_type = ? AND report_id = ?",
		r.reportType, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return types.Record{}, types.ErrNotFound
	}
	return rec, err
}

// Create inserts a new record. The status defaults to Open when the fields
// do not carry one; an attachment is stored write-once and its filename is
// recorded on the record's photo_paths field.
func (r *Reports) Create(ctx context.Context, fields map[string]any, attachment *types.Attachment) (string, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	if !r.backend.attached {
		return "", ErrDetached
	}

	status := types.StatusOpen
	body := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		if k == "status" {
			if s, ok := v.(string); ok && s != "" {
				status = s
			}
			continue
		}
		body[k] = v
	}
	if !types.IsValidStatus(status) {
		return "", types.ErrInvalidStatus
	}

	id := newUUID()
	now := time.Now().UTC().Format(time.RFC3339)

	if attachment != nil {
		if _, err := r.backend.db.ExecContext(ctx,
			"INSERT INTO attachments (attachment_id, report_id, filename, data, created_at) VALUES (?, ?, ?, ?, ?)",
			newUUID(), id, attachment.Filename, attachment.Data, now); err != nil {
			return "", fmt.Errorf("inserting attachment: %w", err)
		}
		body["photo_paths"] = []string{attachment.Filename}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling report fields: %w", err)
	}
	if _, err := r.backend.db.ExecContext(ctx,
		"INSERT INTO reports (report_id, report_type, status, fields, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, r.reportType, status, string(payload), now, now); err != nil {
		return "", fmt.Errorf("inserting report: %w", err)
	}
	return id, nil
}

// UpdateStatus changes only the status of one record.
func (r *Reports) UpdateStatus(ctx context.Context, id, status string) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	if !r.backend.attached {
		return ErrDetached
	}
	if id == "" {
		return types.ErrInvalidID
	}
	if !types.IsValidStatus(status) {
		return types.ErrInvalidStatus
	}

	res, err := r.backend.db.ExecContext(ctx,
		"UPDATE reports SET status = ?, updated_at = ? WHERE report_type = ? AND report_id = ?",
		status, time.Now().UTC().Format(time.RFC3339), r.reportType, id)
	if err != nil {
		return fmt.Errorf("updating report status: %w", err)
	}
	return requireRow(res)
}

// UpdateRecord merges the given fields into the record's payload. A "status"
// entry updates the status column; "id" is immutable and ignored.
func (r *Reports) UpdateRecord(ctx context.Context, id string, fields map[string]any) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	if !r.backend.attached {
		return ErrDetached
	}
	if id == "" {
		return types.ErrInvalidID
	}

	var status, payload string
	err := r.backend.db.QueryRowContext(ctx,
		"SELECT status, fields FROM reports WHERE report_type = ? AND report_id = ?",
		r.reportType, id).Scan(&status, &payload)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("loading report: %w", err)
	}

	body := make(map[string]any)
	if err := json.Unmarshal([]byte(payload), &body); err != nil {
		return fmt.Errorf("parsing report fields: %w", err)
	}
	for k, v := range fields {
		switch k {
		case "id":
			continue
		case "status":
			s, ok := v.(string)
			if !ok || !types.IsValidStatus(s) {
				return types.ErrInvalidStatus
			}
			status = s
		default:
			body[k] = v
		}
	}

	merged, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling report fields: %w", err)
	}
	res, err := r.backend.db.ExecContext(ctx,
		"UPDATE reports SET status = ?, fields = ?, updated_at = ? WHERE report_type = ? AND report_id = ?",
		status, string(merged), time.Now().UTC().Format(time.RFC3339), r.reportType, id)
	if err != nil {
		return fmt.Errorf("updating report: %w", err)
	}
	return requireRow(res)
}

// Delete removes a record and its attachments.
func (r *Reports) Delete(ctx context.Context, id string) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	if !r.backend.attached {
		return ErrDetached
	}
	if id == "" {
		return types.ErrInvalidID
	}

	if _, err := r.backend.db.ExecContext(ctx,
		"DELETE FROM attachments WHERE report_id = ?", id); err != nil {
		return fmt.Errorf("deleting attachments: %w", err)
	}
	res, err := r.backend.db.ExecContext(ctx,
		"DELETE FROM reports WHERE report_type = ? AND report_id = ?", r.reportType, id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return requireRow(res)
}

// Attachment returns the first attachment stored for a record, or
// types.ErrNotFound when the record carries none.
func (r *Reports) Attachment(ctx context.Context, id string) (types.Attachment, error) {
	r.backend.mu.RLock()
	defer r.backend.mu.RUnlock()
	if !r.backend.attached {
		return types.Attachment{}, ErrDetached
	}

	var att types.Attachment
	err := r.backend.db.QueryRowContext(ctx,
		"SELECT filename, data FROM attachments WHERE report_id = ? ORDER BY created_at LIMIT 1",
		id).Scan(&att.Filename, &att.Data)
	if err == sql.ErrNoRows {
		return types.Attachment{}, types.ErrNotFound
	}
	if err != nil {
		return types.Attachment{}, fmt.Errorf("loading attachment: %w", err)
	}
	return att, nil
}

// requireRow converts a zero-row write into types.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// scanner matches sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord builds a Record from a reports row.
func scanRecord(s scanner) (types.Record, error) {
	var rec types.Record
	var payload string
	if err := s.Scan(&rec.ID, &rec.Status, &payload); err != nil {
		return types.Record{}, err
	}
	if err := json.Unmarshal([]byte(payload), &rec.Fields); err != nil {
		return types.Record{}, fmt.Errorf("parsing report fields: %w", err)
	}
	return rec, nil
}
