package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/record"
)

// SQLiteRecordRepo implements RecordRepo on the records table.
type SQLiteRecordRepo struct {
	db  db.DBTX
	now func() time.Time
}

func NewSQLiteRecordRepo(db db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: db, now: time.Now}
}

func (r *SQLiteRecordRepo) List(ctx context.Context, planID string, c record.Collection) ([]Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, body FROM records WHERE plan_id = ? AND collection = ? ORDER BY position`,
		planID, string(c))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var d Document
		var body string
		if err := rows.Scan(&d.ID, &body); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", c, err)
		}
		d.Body = []byte(body)
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", c, err)
	}
	return docs, nil
}

// Replace deletes the stored collection and writes docs in order. Callers
// run it inside a unit of work so a failed write leaves the old rows intact.
func (r *SQLiteRecordRepo) Replace(ctx context.Context, planID string, c record.Collection, docs []Document) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM records WHERE plan_id = ? AND collection = ?`, planID, string(c)); err != nil {
		return fmt.Errorf("clearing %s: %w", c, err)
	}

	stamp := formatTime(r.now())
	for i, d := range docs {
		if d.ID == "" {
			return fmt.Errorf("saving %s: record at position %d has no id", c, i)
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO records (plan_id, collection, id, position, body, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			planID, string(c), d.ID, i, string(d.Body), stamp)
		if err != nil {
			return fmt.Errorf("saving %s record %q: %w", c, d.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRecordRepo) Counts(ctx context.Context, planID string) (map[record.Collection]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT collection, COUNT(*) FROM records WHERE plan_id = ? GROUP BY collection`, planID)
	if err != nil {
		return nil, fmt.Errorf("counting records: %w", err)
	}
	defer rows.Close()

	counts := make(map[record.Collection]int, len(record.Collections))
	for _, c := range record.Collections {
		counts[c] = 0
	}
	for rows.Next() {
		var c string
		var n int
		if err := rows.Scan(&c, &n); err != nil {
			return nil, fmt.Errorf("scanning record count: %w", err)
		}
		counts[record.Collection(c)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating record counts: %w", err)
	}
	return counts, nil
}
