package playlist

import (
	"bytes"
	"sort"
)

// Generator renders entries back into playlist text.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run emits the header line followed by each entry's original directive line
// and its URL.
func (g *Generator) Run(entries []Entry) string {
	var buf bytes.Buffer

	buf.WriteString(Header)
	buf.WriteString("\n")

	for _, entry := range entries {
		buf.WriteString(entry.Extinf)
		buf.WriteString("\n")
		buf.WriteString(entry.URL)
		buf.WriteString("\n")
	}

	return buf.String()
}

// DistinctValues resolves the given attribute for every entry and returns
// the distinct non-empty values in lexicographic order.
func DistinctValues(entries []Entry, attribute string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0, len(entries))

	for _, entry := range entries {
		value := entry.Attr(attribute)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}

	sort.Strings(values)

	return values
}
