package api

import (
	"github.com/lysyi3m/m3u-comb/app/database"
	"github.com/lysyi3m/m3u-comb/app/filter"
	"github.com/lysyi3m/m3u-comb/app/playlist"
	"github.com/lysyi3m/m3u-comb/app/rules"
	"github.com/lysyi3m/m3u-comb/app/source"
)

type Handler struct {
	doc           *rules.Document
	sourceRepo    database.SourceRepository // nil when caching is disabled
	reader        *source.Reader
	importer      *source.FeedImporter
	parser        *playlist.Parser
	filterer      *filter.Filterer
	postProcessor *filter.PostProcessor
	generator     *playlist.Generator
}
