// Package diagnostics persists per-frame render diagnostics to a local
// SQLite database and replays or exports them, independent of any live
// terminal.
package diagnostics

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// FrameRecord is one recorded draw: when it happened, how much of the
// screen it touched, and how long the whole Terminal.Draw call took.
type FrameRecord struct {
	ID         int64
	RecordedAt time.Time
	Width      int
	Height     int
	Updates    int
	Duration   time.Duration
	Error      string // empty on a successful frame
}

// Recorder appends FrameRecords to a SQLite database at path, creating
// the schema on first use.
type Recorder struct {
	db *sql.DB
}

// OpenRecorder opens (creating if necessary) a SQLite database at path
// and ensures its schema exists.
func OpenRecorder(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Recorder{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS frames (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at INTEGER NOT NULL,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL,
	updates INTEGER NOT NULL,
	duration_us INTEGER NOT NULL,
	error TEXT NOT NULL DEFAULT ''
);`

// Record inserts one frame's diagnostics.
func (r *Recorder) Record(f FrameRecord) error {
	_, err := r.db.Exec(
		`INSERT INTO frames (recorded_at, width, height, updates, duration_us, error) VALUES (?, ?, ?, ?, ?, ?)`,
		f.RecordedAt.UnixNano(), f.Width, f.Height, f.Updates, f.Duration.Microseconds(), f.Error,
	)
	return err
}

// Recent returns up to n most recently recorded frames, newest first.
func (r *Recorder) Recent(n int) ([]FrameRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, recorded_at, width, height, updates, duration_us, error FROM frames ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FrameRecord
	for rows.Next() {
		var rec FrameRecord
		var recordedAtNanos, durationUs int64
		if err := rows.Scan(&rec.ID, &recordedAtNanos, &rec.Width, &rec.Height, &rec.Updates, &durationUs, &rec.Error); err != nil {
			return nil, err
		}
		rec.RecordedAt = time.Unix(0, recordedAtNanos)
		rec.Duration = time.Duration(durationUs) * time.Microsecond
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close closes the underlying database handle.
func (r *Recorder) Close() error { return r.db.Close() }

// RecordFrame adapts Record to the shape a render loop naturally has on
// hand after a draw: size, update count, how long it took, and any
// error as a string. It satisfies the tui.FrameRecorder interface
// structurally, without this package importing the core module.
func (r *Recorder) RecordFrame(width, height, updates int, duration time.Duration, renderErr error) error {
	errText := ""
	if renderErr != nil {
		errText = renderErr.Error()
	}
	return r.Record(FrameRecord{
		RecordedAt: time.Now(),
		Width:      width,
		Height:     height,
		Updates:    updates,
		Duration:   duration,
		Error:      errText,
	})
}
