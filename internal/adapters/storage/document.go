package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Document tables share one layout: (club_id, academic_year, document, updated_at).
// The whole document is written at once; the last write wins.

// LoadDocument reads and decodes the document stored under (clubID, year).
// PRE: table is one of the document tables
// POST: Returns ErrNotFound (wrapped) when no row exists
func LoadDocument(ctx context.Context, db SQLDB, table, clubID string, year int, dst any) error {
	query := fmt.Sprintf("SELECT document FROM %s WHERE club_id = ? AND academic_year = ?", table)
	var raw string
	err := db.QueryRowContext(ctx, query, clubID, year).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s/%d: %w", table, clubID, year, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", table, err)
	}
	return nil
}

// SaveDocument encodes and upserts a document under (clubID, year).
// PRE: table is one of the document tables
// POST: The row holds exactly doc
func SaveDocument(ctx context.Context, db SQLDB, table, clubID string, year int, doc any, updatedAt time.Time) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", table, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := fmt.Sprintf(
		"INSERT INTO %s (club_id, academic_year, document, updated_at) VALUES (?, ?, ?, ?) "+
			"ON CONFLICT(club_id, academic_year) DO UPDATE SET document=excluded.document, updated_at=excluded.updated_at",
		table,
	)
	if _, err := tx.ExecContext(ctx, query, clubID, year, string(raw), updatedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}
	return tx.Commit()
}
