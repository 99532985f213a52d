package source

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Reader loads playlist data from a local file or a remote URL.
type Reader struct {
	client    *http.Client
	userAgent string
}

func NewReader(userAgent string, timeout time.Duration) *Reader {
	return &Reader{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Read returns the raw bytes of the given source. Sources with an http or
// https scheme are fetched; everything else is treated as a file path.
func (r *Reader) Read(src string) ([]byte, error) {
	if IsURL(src) {
		return r.fetch(src)
	}
	return readFile(src)
}

// IsURL reports whether the source names a remote resource.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func (r *Reader) fetch(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("empty response body from %s", url)
	}

	return data, nil
}
