package source

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReader_Read_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.m3u")
	if err := os.WriteFile(path, []byte("#EXTM3U\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	reader := NewReader("test-agent", 5*time.Second)

	data, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != "#EXTM3U\n" {
		t.Errorf("Unexpected data: %q", data)
	}
}

func TestReader_Read_MissingFile(t *testing.T) {
	reader := NewReader("test-agent", 5*time.Second)

	_, err := reader.Read(filepath.Join(t.TempDir(), "missing.m3u"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestReader_Read_URL(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("#EXTM3U\n"))
	}))
	defer server.Close()

	reader := NewReader("test-agent", 5*time.Second)

	data, err := reader.Read(server.URL)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != "#EXTM3U\n" {
		t.Errorf("Unexpected data: %q", data)
	}
	if gotAgent != "test-agent" {
		t.Errorf("Configured user agent must be sent, got %q", gotAgent)
	}
}

func TestReader_Read_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	reader := NewReader("test-agent", 5*time.Second)

	_, err := reader.Read(server.URL)
	if err == nil {
		t.Fatal("Expected an error for a non-200 response")
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("http://example.com/list.m3u") {
		t.Errorf("http URLs must be recognized")
	}
	if !IsURL("https://example.com/list.m3u") {
		t.Errorf("https URLs must be recognized")
	}
	if IsURL("/var/lib/playlists/list.m3u") {
		t.Errorf("File paths must not be treated as URLs")
	}
}
