package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/m3u-comb/app/cfg"
	"github.com/lysyi3m/m3u-comb/app/database"
	"github.com/lysyi3m/m3u-comb/app/filter"
	"github.com/lysyi3m/m3u-comb/app/playlist"
	"github.com/lysyi3m/m3u-comb/app/rules"
	"github.com/lysyi3m/m3u-comb/app/source"
)

func NewHandler(doc *rules.Document, sourceRepo database.SourceRepository) *Handler {
	appCfg := cfg.Get()

	return &Handler{
		doc:           doc,
		sourceRepo:    sourceRepo,
		reader:        source.NewReader(appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second),
		importer:      source.NewFeedImporter(),
		parser:        playlist.NewParser(),
		filterer:      filter.NewFilterer(),
		postProcessor: filter.NewPostProcessor(),
		generator:     playlist.NewGenerator(),
	}
}

// GetPlaylist runs the full pipeline against the configured source and
// returns the filtered playlist.
func (h *Handler) GetPlaylist(c *gin.Context) {
	data, err := h.loadSource()
	if err != nil {
		slog.Error("Source load failed", "source", cfg.Get().Source, "error", err)
		c.Status(http.StatusBadGateway)
		return
	}

	var entries []playlist.Entry
	if cfg.Get().FromFeed {
		entries, err = h.importer.Run(data)
		if err != nil {
			slog.Error("Feed import failed", "source", cfg.Get().Source, "error", err)
			c.Status(http.StatusBadGateway)
			return
		}
	} else {
		entries = h.parser.Parse(data)
	}

	accepted := h.filterer.Run(entries, h.doc)
	final := h.postProcessor.Run(accepted, h.doc.PostProcess)

	c.Header("Content-Type", "audio/x-mpegurl; charset=utf-8")
	c.Header("X-Playlist-Entries", strconv.Itoa(len(final)))
	c.String(http.StatusOK, h.generator.Run(final))
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": cfg.Get().Version,
	})
}

// loadSource returns the source bytes, going through the cache when one is
// configured and the source is remote. A stale or missing cache row falls
// back to a fresh fetch; a cache write failure is logged, not fatal.
func (h *Handler) loadSource() ([]byte, error) {
	src := cfg.Get().Source

	if h.sourceRepo == nil || !source.IsURL(src) {
		return h.reader.Read(src)
	}

	ttl := time.Duration(cfg.Get().CacheTTL) * time.Second

	cached, err := h.sourceRepo.GetSource(src)
	if err != nil {
		slog.Error("Cache lookup failed", "source", src, "error", err)
	} else if cached != nil && time.Since(cached.FetchedAt) < ttl {
		slog.Debug("Serving cached source", "source", src, "fetched_at", cached.FetchedAt)
		return cached.Data, nil
	}

	data, err := h.reader.Read(src)
	if err != nil {
		return nil, err
	}

	if err := h.sourceRepo.UpsertSource(src, data, time.Now()); err != nil {
		slog.Error("Cache write failed", "source", src, "error", err)
	}

	return data, nil
}
