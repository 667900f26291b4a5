package marker

import (
	"context"
	"time"

	"github.com/chris/mainsbot/internal/db"
)

const noteKey = "welcome_sent"

// SQLiteStore keeps the marker as a note row, for hosts where the working
// directory is not durable but a database path is.
type SQLiteStore struct {
	db *db.DB
}

func NewSQLiteStore(database *db.DB) *SQLiteStore {
	return &SQLiteStore{db: database}
}

func (s *SQLiteStore) Initialized(ctx context.Context) (bool, error) {
	_, ok, err := s.db.GetNote(ctx, noteKey)
	return ok, err
}

func (s *SQLiteStore) MarkInitialized(ctx context.Context) error {
	return s.db.SetNote(ctx, noteKey, time.Now().UTC().Format(time.RFC3339))
}
