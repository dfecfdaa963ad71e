package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/donavanyieh/Daily-Attention-UI/internal/models"
)

// PaperRef is the short (id, title) form used in reports.
type PaperRef struct {
	ID    string
	Title string
}

// ReseedPapers drops and recreates the papers table, then inserts papers, all
// in one transaction. Any failure rolls the whole reseed back.
func (s *Store) ReseedPapers(ctx context.Context, papers []models.Paper) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS papers;`); err != nil {
		return fmt.Errorf("drop papers table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, papersSchemaSQL); err != nil {
		return fmt.Errorf("create papers table: %w", err)
	}
	if err := insertPapers(ctx, tx, papers); err != nil {
		return err
	}
	return tx.Commit()
}

const insertPaperSQL = `
INSERT INTO papers (id, title, authors, abstract, summary, keyPoints, impact, links, date, upvotes, tags)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func insertPapers(ctx context.Context, tx *sql.Tx, papers []models.Paper) error {
	stmt, err := tx.PrepareContext(ctx, insertPaperSQL)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range papers {
		enc, err := p.Encode()
		if err != nil {
			return fmt.Errorf("paper %s: %w", p.ID, err)
		}
		_, err = stmt.ExecContext(
			ctx,
			p.ID,
			p.Title,
			enc.Authors,
			p.Abstract,
			p.Summary,
			enc.KeyPoints,
			p.Impact,
			enc.Links,
			p.Date,
			p.Upvotes,
			enc.Tags,
		)
		if err != nil {
			return fmt.Errorf("insert paper %s: %w", p.ID, err)
		}
	}
	return nil
}

// CountPapers returns the number of rows in the papers table.
func (s *Store) CountPapers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM papers`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SamplePapers returns up to limit (id, title) pairs in rowid order.
func (s *Store) SamplePapers(ctx context.Context, limit int) ([]PaperRef, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title FROM papers ORDER BY rowid LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PaperRef
	for rows.Next() {
		var ref PaperRef
		if err := rows.Scan(&ref.ID, &ref.Title); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

const selectPaperSQL = `
SELECT id, title, authors, abstract, summary, keyPoints, impact, links, date, upvotes, tags, created_at
FROM papers
`

// ListPapers returns stored papers newest date first. limit <= 0 means all.
// An empty table yields an empty, non-nil slice.
func (s *Store) ListPapers(ctx context.Context, limit int) ([]models.Paper, error) {
	query := selectPaperSQL + `ORDER BY date DESC, id ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Paper{}
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPaper loads one paper. It returns sql.ErrNoRows when id is unknown.
func (s *Store) GetPaper(ctx context.Context, id string) (models.Paper, error) {
	row := s.db.QueryRowContext(ctx, selectPaperSQL+`WHERE id = ?`, id)
	return scanPaper(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPaper(r rowScanner) (models.Paper, error) {
	var (
		p         models.Paper
		enc       models.EncodedColumns
		createdAt any
	)
	err := r.Scan(
		&p.ID,
		&p.Title,
		&enc.Authors,
		&p.Abstract,
		&p.Summary,
		&enc.KeyPoints,
		&p.Impact,
		&enc.Links,
		&p.Date,
		&p.Upvotes,
		&enc.Tags,
		&createdAt,
	)
	if err != nil {
		return models.Paper{}, err
	}
	if err := enc.Decode(&p); err != nil {
		return models.Paper{}, fmt.Errorf("paper %s: %w", p.ID, err)
	}
	p.CreatedAt = parseTimestamp(createdAt)
	return p, nil
}

// parseTimestamp accepts the driver's time.Time or SQLite's CURRENT_TIMESTAMP text.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		return parseTimestampText(t)
	case []byte:
		return parseTimestampText(string(t))
	}
	return time.Time{}
}

func parseTimestampText(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}
