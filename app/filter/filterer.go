package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/lysyi3m/m3u-comb/app/playlist"
	"github.com/lysyi3m/m3u-comb/app/rules"
)

// Filterer selects the entries accepted by a rule document.
type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run returns the entries satisfying at least one criterion, in input
// order. Entries are evaluated independently of one another.
func (f *Filterer) Run(entries []playlist.Entry, doc *rules.Document) []playlist.Entry {
	accepted := make([]playlist.Entry, 0, len(entries))
	for _, entry := range entries {
		if f.accepts(entry, doc.Accept) {
			accepted = append(accepted, entry)
		}
	}
	return accepted
}

func (f *Filterer) accepts(entry playlist.Entry, criteria []rules.Criterion) bool {
	for _, criterion := range criteria {
		if f.matchesCriterion(entry, criterion) {
			return true
		}
	}
	return false
}

func (f *Filterer) matchesCriterion(entry playlist.Entry, criterion rules.Criterion) bool {
	for _, filter := range criterion.Filters {
		if !f.matchesFilter(entry, filter) {
			return false
		}
	}
	return true
}

// matchesFilter passes as soon as any listed value satisfies the operator.
// The negative operators are no exception: with several values the filter
// passes once the attribute differs from (or excludes) any one of them.
func (f *Filterer) matchesFilter(entry playlist.Entry, filter rules.Filter) bool {
	attr := Fold(entry.Attr(filter.Attribute))
	for _, value := range filter.Values {
		if f.matchesOperator(attr, Fold(value), filter.Operator) {
			return true
		}
	}
	return false
}

func (f *Filterer) matchesOperator(attr, value string, operator rules.Operator) bool {
	switch operator {
	case rules.OpEquals:
		return attr == value
	case rules.OpIncludes:
		return strings.Contains(attr, value)
	case rules.OpStartsWith:
		return strings.HasPrefix(attr, value)
	case rules.OpNotEquals:
		return attr != value
	case rules.OpNotIncludes:
		return !strings.Contains(attr, value)
	case rules.OpNotStartsWith:
		return !strings.HasPrefix(attr, value)
	}
	return false
}

// Fold case-folds a string for comparison. Stored values keep their
// original casing. A Caser is stateful, so one is created per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}
