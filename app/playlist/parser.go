package playlist

import (
	"log/slog"
	"strings"
)

const directivePrefix = "#EXTINF"

// Parser turns raw M3U playlist text into entries
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse scans playlist text and returns the entries in input order. An
// optional header line is skipped. A directive line immediately followed by
// another line forms one entry; any other line is skipped. A directive line
// at the very end of the input has no URL to pair with and is dropped.
func (p *Parser) Parse(data []byte) []Entry {
	lines := splitLines(string(data))

	i := 0
	if len(lines) > 0 && lines[0] == Header {
		i = 1
	}

	entries := make([]Entry, 0, len(lines)/2)
	for i < len(lines) {
		if strings.HasPrefix(lines[i], directivePrefix) && i+1 < len(lines) {
			entries = append(entries, p.parseEntry(lines[i], lines[i+1]))
			i += 2
			continue
		}
		i++
	}

	slog.Debug("Playlist parsed", "entries", len(entries))

	return entries
}

// parseEntry builds an entry from a directive line and its URL line.
// Attributes are taken only from the text before the first comma; the text
// after that comma is the display name. A display name containing further
// commas is kept whole, and an attribute placed after the first comma is
// never seen. Both follow the playlist format as consumers of it expect.
func (p *Parser) parseEntry(directive, url string) Entry {
	attrText := directive
	name := ""
	if idx := strings.Index(directive, ","); idx >= 0 {
		attrText = directive[:idx]
		name = strings.TrimSpace(directive[idx+1:])
	}

	attrs := p.parseAttributes(attrText)
	attrs["channel_name"] = name

	return Entry{
		Extinf: directive,
		URL:    strings.TrimSpace(url),
		Attrs:  attrs,
	}
}

// parseAttributes extracts name="value" pairs. For each `="` occurrence the
// attribute name runs back to the nearest space (or the start of the text)
// and the value runs forward to the closing quote. A missing closing quote
// ends extraction for the line; whatever follows is dropped.
func (p *Parser) parseAttributes(text string) map[string]string {
	attrs := make(map[string]string)

	for {
		eq := strings.Index(text, `="`)
		if eq < 0 {
			break
		}

		start := strings.LastIndex(text[:eq], " ") + 1
		name := text[start:eq]

		rest := text[eq+2:]
		end := strings.Index(rest, `"`)
		if end < 0 {
			break
		}

		attrs[name] = rest[:end]
		text = rest[end+1:]
	}

	return attrs
}

// splitLines splits on newlines, tolerating CRLF endings. A trailing newline
// does not produce a phantom empty line.
func splitLines(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	lines := strings.Split(data, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
