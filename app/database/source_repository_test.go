package database

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestSourceRepository_GetSource_Missing(t *testing.T) {
	repo := NewSourceRepository(setupTestDB(t))

	source, err := repo.GetSource("http://example.com/list.m3u")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if source != nil {
		t.Errorf("Expected nil for an unknown URL, got %+v", source)
	}
}

func TestSourceRepository_UpsertAndGet(t *testing.T) {
	repo := NewSourceRepository(setupTestDB(t))

	url := "http://example.com/list.m3u"
	fetchedAt := time.Now().UTC().Truncate(time.Second)

	if err := repo.UpsertSource(url, []byte("#EXTM3U\n"), fetchedAt); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	source, err := repo.GetSource(url)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if source == nil {
		t.Fatal("Expected a cached source")
	}
	if string(source.Data) != "#EXTM3U\n" {
		t.Errorf("Unexpected data: %q", source.Data)
	}
	if !source.FetchedAt.Equal(fetchedAt) {
		t.Errorf("Unexpected fetched_at: %v", source.FetchedAt)
	}
}

func TestSourceRepository_UpsertReplaces(t *testing.T) {
	repo := NewSourceRepository(setupTestDB(t))

	url := "http://example.com/list.m3u"

	if err := repo.UpsertSource(url, []byte("old"), time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := repo.UpsertSource(url, []byte("new"), time.Now()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	source, err := repo.GetSource(url)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(source.Data) != "new" {
		t.Errorf("Upsert must replace previous data, got %q", source.Data)
	}
}
