package database

import (
	"database/sql"
	"fmt"
	"time"
)

type sourceRepository struct {
	db *DB
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *DB) SourceRepository {
	return &sourceRepository{db: db}
}

// GetSource returns the cached source for a URL, or nil when none exists.
func (r *sourceRepository) GetSource(url string) (*Source, error) {
	var source Source

	err := r.db.QueryRow(`
		SELECT url, data, fetched_at, created_at, updated_at
		FROM sources
		WHERE url = ?
	`, url).Scan(&source.URL, &source.Data, &source.FetchedAt,
		&source.CreatedAt, &source.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	return &source, nil
}

// UpsertSource stores fetched source data, replacing any previous copy.
func (r *sourceRepository) UpsertSource(url string, data []byte, fetchedAt time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO sources (url, data, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			data = excluded.data,
			fetched_at = excluded.fetched_at,
			updated_at = CURRENT_TIMESTAMP
	`, url, data, fetchedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert source: %w", err)
	}

	return nil
}
