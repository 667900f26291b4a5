package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetNote retrieves a note by key. A missing key yields "" and ok=false.
func (d *DB) GetNote(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := d.conn.QueryRowContext(ctx, "SELECT value FROM notes WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting note: %w", err)
	}
	return value, true, nil
}

// SetNote stores or updates a note by key.
func (d *DB) SetNote(ctx context.Context, key, value string) error {
	_, err := d.conn.ExecContext(ctx,
		"INSERT INTO notes (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = datetime('now')",
		key, value, value,
	)
	if err != nil {
		return fmt.Errorf("setting note: %w", err)
	}
	return nil
}
