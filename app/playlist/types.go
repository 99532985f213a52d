package playlist

// Header is the marker line opening an extended M3U playlist.
const Header = "#EXTM3U"

// Entry represents a single playlist entry: one #EXTINF directive line and
// the resource URL that follows it.
type Entry struct {
	Extinf string            // original directive line, emitted verbatim
	URL    string            // resource URL, trimmed
	Attrs  map[string]string // attributes parsed from the directive line
}

// Attr resolves an attribute by name. The names "url" and "name" are
// reserved: "url" resolves to the entry URL and "name" to the display name
// synthesized during parsing (stored as "channel_name"). Every other name
// resolves through the attribute map, with missing attributes yielding an
// empty string.
func (e Entry) Attr(name string) string {
	switch name {
	case "url":
		return e.URL
	case "name":
		return e.Attrs["channel_name"]
	default:
		return e.Attrs[name]
	}
}
