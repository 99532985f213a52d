package source

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/mmcdole/gofeed"

	"github.com/lysyi3m/m3u-comb/app/playlist"
)

// FeedImporter converts an RSS/Atom feed into playlist entries so feeds
// with media enclosures (podcasts, video feeds) can run through the same
// filtering pipeline as playlists.
type FeedImporter struct {
	gofeedParser *gofeed.Parser
}

func NewFeedImporter() *FeedImporter {
	return &FeedImporter{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses feed data and returns one entry per item carrying an
// enclosure. The item title becomes the display name and tvg-name, the
// item's first category becomes group-title.
func (fi *FeedImporter) Run(data []byte) ([]playlist.Entry, error) {
	feed, err := fi.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]playlist.Entry, 0, len(feed.Items))
	skipped := 0

	for _, item := range feed.Items {
		if len(item.Enclosures) == 0 || item.Enclosures[0].URL == "" {
			skipped++
			continue
		}

		attrs := map[string]string{
			"tvg-name":     item.Title,
			"channel_name": item.Title,
		}
		if len(item.Categories) > 0 {
			attrs["group-title"] = item.Categories[0]
		}

		entries = append(entries, playlist.Entry{
			Extinf: buildDirective(item.Title, attrs),
			URL:    item.Enclosures[0].URL,
			Attrs:  attrs,
		})
	}

	slog.Debug("Feed imported", "feed", feed.Title,
		"entries", len(entries), "skipped", skipped)

	return entries, nil
}

func buildDirective(name string, attrs map[string]string) string {
	var buf bytes.Buffer

	buf.WriteString("#EXTINF:-1")
	buf.WriteString(fmt.Sprintf(" tvg-name=%q", attrs["tvg-name"]))
	if group, ok := attrs["group-title"]; ok {
		buf.WriteString(fmt.Sprintf(" group-title=%q", group))
	}
	buf.WriteString(",")
	buf.WriteString(name)

	return buf.String()
}
