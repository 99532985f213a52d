package playlist

import (
	"testing"
)

func TestGenerator_Run(t *testing.T) {
	generator := NewGenerator()

	entries := []Entry{
		{
			Extinf: "#EXTINF:-1 tvg-name=\"One\",Channel One",
			URL:    "http://example.com/one.ts",
		},
		{
			Extinf: "#EXTINF:-1 tvg-name=\"Two\",Channel Two",
			URL:    "http://example.com/two.ts",
		},
	}

	expected := "#EXTM3U\n" +
		"#EXTINF:-1 tvg-name=\"One\",Channel One\n" +
		"http://example.com/one.ts\n" +
		"#EXTINF:-1 tvg-name=\"Two\",Channel Two\n" +
		"http://example.com/two.ts\n"

	if result := generator.Run(entries); result != expected {
		t.Errorf("Unexpected rendition:\n%s", result)
	}
}

func TestGenerator_Run_Empty(t *testing.T) {
	generator := NewGenerator()

	if result := generator.Run(nil); result != "#EXTM3U\n" {
		t.Errorf("Empty playlist should still carry the header, got %q", result)
	}
}

func TestGenerator_Run_RoundTrip(t *testing.T) {
	parser := NewParser()
	generator := NewGenerator()

	input := "#EXTM3U\n" +
		"#EXTINF:-1 tvg-name=\"One\" group-title=\"UK| NEWS\",Channel One\n" +
		"http://example.com/one.ts\n"

	if result := generator.Run(parser.Parse([]byte(input))); result != input {
		t.Errorf("Parse/render round trip changed the playlist:\n%s", result)
	}
}

func TestDistinctValues(t *testing.T) {
	entries := []Entry{
		{Attrs: map[string]string{"group-title": "News"}},
		{Attrs: map[string]string{"group-title": "Movies"}},
		{Attrs: map[string]string{"group-title": "News"}},
		{Attrs: map[string]string{}},
	}

	values := DistinctValues(entries, "group-title")

	if len(values) != 2 {
		t.Fatalf("Expected 2 distinct values, got %d", len(values))
	}
	if values[0] != "Movies" || values[1] != "News" {
		t.Errorf("Values must be sorted lexicographically, got %v", values)
	}
}

func TestDistinctValues_ReservedAttribute(t *testing.T) {
	entries := []Entry{
		{URL: "http://example.com/b.ts"},
		{URL: "http://example.com/a.ts"},
		{URL: "http://example.com/b.ts"},
	}

	values := DistinctValues(entries, "url")

	if len(values) != 2 {
		t.Fatalf("Expected 2 distinct URLs, got %d", len(values))
	}
	if values[0] != "http://example.com/a.ts" {
		t.Errorf("Unexpected ordering: %v", values)
	}
}
