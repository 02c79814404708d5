package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"time"

	"fdk/internal/model"

	_ "modernc.org/sqlite"
)

// The event log records mutations (aircraft created, checklist saved,
// template edited) for troubleshooting. It is derived data living next to
// the JSON documents; losing it loses history, never state.

const eventLogSchema = `
CREATE TABLE IF NOT EXISTS events (
  id        TEXT PRIMARY KEY,
  ts        TEXT NOT NULL,
  type      TEXT NOT NULL,
  entity_id TEXT NOT NULL,
  payload   TEXT
);
CREATE INDEX IF NOT EXISTS idx_events_ts ON events(ts);
`

func (s Store) eventLogPath() string {
	return filepath.Join(s.Dir, "index.sqlite")
}

func (s Store) openEventLog(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.eventLogPath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout helps avoid
	// "database is locked" flakiness with concurrent invocations.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, eventLogSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// AppendEvent records one mutation. The payload is stored as JSON.
func (s Store) AppendEvent(ctx context.Context, typ, entityID string, payload any) error {
	db, err := s.openEventLog(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	var body []byte
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			return err
		}
	}
	id, err := newEventID()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO events (id, ts, type, entity_id, payload) VALUES (?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339Nano), typ, entityID, string(body))
	return err
}

// ReadEvents returns the most recent events, newest first. limit <= 0 means
// no limit.
func (s Store) ReadEvents(ctx context.Context, limit int) ([]model.Event, error) {
	db, err := s.openEventLog(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	q := `SELECT id, ts, type, entity_id, payload FROM events ORDER BY ts DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var ev model.Event
		var ts, payload string
		if err := rows.Scan(&ev.ID, &ts, &ev.Type, &ev.EntityID, &payload); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			ev.TS = t
		}
		if payload != "" {
			var body any
			if err := json.Unmarshal([]byte(payload), &body); err == nil {
				ev.Payload = body
			}
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func newEventID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return "ev-" + hex.EncodeToString(b[:]), nil
}
