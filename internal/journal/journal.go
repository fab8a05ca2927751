// File: journal.go
// Title: Local Event Journal
// Description: SQLite-backed journal of technician actions taken from
//              this device (field saves, attachment uploads, translation
//              requests). The journal is purely local; it exists so a
//              technician can reconstruct what was sent when a backend
//              write is disputed.

package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// EventType classifies a journal entry
type EventType string

const (
	EventTaskViewed   EventType = "task_viewed"
	EventFieldSaved   EventType = "field_saved"
	EventUploadDone   EventType = "upload_done"
	EventUploadFailed EventType = "upload_failed"
	EventTranslated   EventType = "translated"
	EventSaveFailed   EventType = "save_failed"
)

// Event is one journal entry
type Event struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	TaskID    string            `json:"task_id"`
	Type      EventType         `json:"type"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
}

// Filter defines criteria for listing events
type Filter struct {
	TaskID string
	Type   EventType
	Since  time.Time
	Limit  int
}

// Journal is the SQLite-backed event journal
type Journal struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the journal database at path
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return j, nil
}

func (j *Journal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		task_id TEXT NOT NULL,
		type TEXT NOT NULL,
		message TEXT NOT NULL,
		details TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_events_task_id ON events(task_id);
	CREATE INDEX IF NOT EXISTS idx_events_type ON events(type);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Record appends one event. A missing ID or timestamp is filled in.
func (j *Journal) Record(ctx context.Context, event *Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	var detailsJSON []byte
	if event.Details != nil {
		detailsJSON, _ = json.Marshal(event.Details)
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO events (id, timestamp, task_id, type, message, details)
		VALUES (?, ?, ?, ?, ?, ?)
	`, event.ID, event.Timestamp, event.TaskID, event.Type, event.Message, detailsJSON)

	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// List retrieves events newest first
func (j *Journal) List(ctx context.Context, filter Filter) ([]*Event, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	query := `SELECT id, timestamp, task_id, type, message, details FROM events WHERE 1=1`
	var args []interface{}

	if filter.TaskID != "" {
		query += " AND task_id = ?"
		args = append(args, filter.TaskID)
	}
	if filter.Type != "" {
		query += " AND type = ?"
		args = append(args, filter.Type)
	}
	if !filter.Since.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.Since)
	}

	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var event Event
		var detailsJSON sql.NullString

		if err := rows.Scan(&event.ID, &event.Timestamp, &event.TaskID,
			&event.Type, &event.Message, &detailsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if detailsJSON.Valid && detailsJSON.String != "" {
			json.Unmarshal([]byte(detailsJSON.String), &event.Details)
		}

		events = append(events, &event)
	}
	return events, rows.Err()
}

// Prune removes events older than the given duration and returns the
// number removed.
func (j *Journal) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	result, err := j.db.ExecContext(ctx, `DELETE FROM events WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the underlying database
func (j *Journal) Close() error {
	return j.db.Close()
}
