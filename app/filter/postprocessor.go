package filter

import (
	"sort"

	"github.com/lysyi3m/m3u-comb/app/playlist"
	"github.com/lysyi3m/m3u-comb/app/rules"
)

// PostProcessor applies the rule document's actions to the accepted
// entries, each action consuming the previous one's output.
type PostProcessor struct{}

func NewPostProcessor() *PostProcessor {
	return &PostProcessor{}
}

func (p *PostProcessor) Run(entries []playlist.Entry, actions []rules.Action) []playlist.Entry {
	for _, action := range actions {
		switch action.Kind {
		case rules.ActionDeduplicate:
			entries = p.deduplicate(entries, action.By)
		case rules.ActionSort:
			entries = p.sortBy(entries, action.By, action.Order == rules.OrderDesc)
		}
	}
	return entries
}

// deduplicate keeps the first entry seen for each distinct value of the
// keyed attribute, comparing values exactly (no case folding).
func (p *PostProcessor) deduplicate(entries []playlist.Entry, by string) []playlist.Entry {
	seen := make(map[string]bool)
	kept := make([]playlist.Entry, 0, len(entries))

	for _, entry := range entries {
		value := entry.Attr(by)
		if seen[value] {
			continue
		}
		seen[value] = true
		kept = append(kept, entry)
	}

	return kept
}

// sortBy stably sorts on the case-folded value of the keyed attribute.
// Entries with equal keys keep their relative order either direction.
func (p *PostProcessor) sortBy(entries []playlist.Entry, by string, desc bool) []playlist.Entry {
	sorted := make([]playlist.Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		a := Fold(sorted[i].Attr(by))
		b := Fold(sorted[j].Attr(by))
		if desc {
			return a > b
		}
		return a < b
	})

	return sorted
}
