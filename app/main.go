package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/m3u-comb/app/api"
	"github.com/lysyi3m/m3u-comb/app/cfg"
	"github.com/lysyi3m/m3u-comb/app/database"
	"github.com/lysyi3m/m3u-comb/app/filter"
	"github.com/lysyi3m/m3u-comb/app/playlist"
	"github.com/lysyi3m/m3u-comb/app/rules"
	"github.com/lysyi3m/m3u-comb/app/source"
)

func main() {
	log.SetFlags(0)

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatal("Error: ", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	doc, err := rules.Load(appCfg.Specs)
	if err != nil {
		log.Fatal("Error: ", err)
	}

	if appCfg.Mode == cfg.ModeServe {
		runServer(appCfg, doc)
		return
	}

	if err := runOnce(appCfg, doc); err != nil {
		log.Fatal("Error: ", err)
	}
}

// runOnce executes the pipeline a single time and writes the selected
// output.
func runOnce(appCfg *cfg.Cfg, doc *rules.Document) error {
	reader := source.NewReader(appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second)

	data, err := reader.Read(appCfg.Source)
	if err != nil {
		return err
	}

	var entries []playlist.Entry
	if appCfg.FromFeed {
		entries, err = source.NewFeedImporter().Run(data)
		if err != nil {
			return err
		}
	} else {
		entries = playlist.NewParser().Parse(data)
	}

	accepted := filter.NewFilterer().Run(entries, doc)
	final := filter.NewPostProcessor().Run(accepted, doc.PostProcess)

	switch appCfg.Mode {
	case cfg.ModeCount:
		fmt.Println(len(final))

	case cfg.ModeListValues:
		for _, value := range playlist.DistinctValues(final, appCfg.ListAttribute) {
			fmt.Println(value)
		}

	default:
		rendered := playlist.NewGenerator().Run(final)
		if appCfg.Output == "" {
			fmt.Print(rendered)
			break
		}
		if err := os.WriteFile(appCfg.Output, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		slog.Info("Playlist written", "path", appCfg.Output, "entries", len(final))
	}

	return nil
}

// runServer exposes the filtered playlist over HTTP until interrupted.
func runServer(appCfg *cfg.Cfg, doc *rules.Document) {
	var sourceRepo database.SourceRepository

	if appCfg.DBPath != "" {
		db, err := database.NewConnection(appCfg.DBPath)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		defer db.Close()

		version, dirty, err := database.RunMigrations(db)
		if err != nil {
			log.Fatal("Failed to run migrations: ", err)
		}
		slog.Info("Database ready", "path", appCfg.DBPath, "migration_version", version, "dirty", dirty)

		sourceRepo = database.NewSourceRepository(db)
	}

	handler := api.NewHandler(doc, sourceRepo)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port, "source", appCfg.Source)
		slog.Info("Endpoints available",
			"playlist", fmt.Sprintf("http://localhost:%s/playlist", appCfg.Port),
			"health", fmt.Sprintf("http://localhost:%s/health", appCfg.Port))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
