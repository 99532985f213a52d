package database

import "time"

// SourceRepository handles database operations for cached sources
type SourceRepository interface {
	GetSource(url string) (*Source, error)
	UpsertSource(url string, data []byte, fetchedAt time.Time) error
}
