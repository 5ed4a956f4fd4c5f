// Local sqlite store for sequences fetched from remote databases, so
// repeated lookups of the same accession stay off the network.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yumyai/alignview/pkg/model"
)

// ErrNotFound is returned when an accession has never been stored.
var ErrNotFound = errors.New("sequence not found")

const schema = `
CREATE TABLE IF NOT EXISTS sequences (
	accession  TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	fetched_at TIMESTAMP NOT NULL
);`

// SequenceStore caches sequence records keyed by accession.
type SequenceStore struct {
	db *sql.DB
}

// NewSequenceStore prepares the schema on the given connection.
func NewSequenceStore(db *sql.DB) (*SequenceStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create sequences table: %w", err)
	}
	return &SequenceStore{db: db}, nil
}

// Get loads a cached sequence by accession.
func (s *SequenceStore) Get(ctx context.Context, accession string) (*model.Sequence, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM sequences WHERE accession = ?`, accession).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sequence %q: %w", accession, err)
	}

	var seq model.Sequence
	if err := json.Unmarshal([]byte(payload), &seq); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sequence %q: %w", accession, err)
	}
	return &seq, nil
}

// Put stores or replaces the cached record for an accession.
func (s *SequenceStore) Put(ctx context.Context, accession string, seq *model.Sequence) error {
	payload, err := json.Marshal(seq)
	if err != nil {
		return fmt.Errorf("failed to marshal sequence %q: %w", accession, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sequences (accession, payload, fetched_at) VALUES (?, ?, ?)`,
		accession, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to store sequence %q: %w", accession, err)
	}
	return nil
}
