// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/coursecompass/docs" // generated OpenAPI document
	"github.com/tomtom215/coursecompass/internal/api"
	"github.com/tomtom215/coursecompass/internal/config"
	"github.com/tomtom215/coursecompass/internal/embedder"
	"github.com/tomtom215/coursecompass/internal/logging"
	"github.com/tomtom215/coursecompass/internal/metrics"
	"github.com/tomtom215/coursecompass/internal/middleware"
	"github.com/tomtom215/coursecompass/internal/recommend"
	"github.com/tomtom215/coursecompass/internal/store"
	"github.com/tomtom215/coursecompass/internal/supervisor"
	"github.com/tomtom215/coursecompass/internal/supervisor/services"
)

// performanceWindow is the number of recent requests kept for
// /api/v1/performance.
const performanceWindow = 1000

const shutdownGrace = 5 * time.Second

//nolint:gocyclo // sequential setup steps
func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.Info().Str("config", cfg.String()).Msg("Starting CourseCompass")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var snapshots *store.SnapshotStore
	if cfg.SnapshotEnabled() {
		snapshots, err = store.Open(cfg.Data.SnapshotDir, false, logging.WithComponent("store"))
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to open snapshot store")
		}
		defer func() {
			if err := snapshots.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing snapshot store")
			}
		}()
	}

	loaded, err := loadDataset(ctx, cfg, snapshots)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load dataset")
		cancel()
		os.Exit(1) //nolint:gocritic // deferred closes are best effort here
	}
	ds := loaded.dataset

	// Embedding is optional: without it, text queries fail with 502 and
	// vector and course-to-course queries keep working.
	var emb recommend.Embedder
	var breaker *embedder.Breaker
	if cfg.EmbeddingEnabled() {
		breaker = embedder.NewBreaker(embedder.NewHTTPClient(&cfg.Embedding), &cfg.Embedding, logging.WithComponent("embedder"))
		emb = breaker
		if cfg.Embedding.CacheSize > 0 {
			emb = embedder.NewCached(breaker, cfg.Embedding.CacheSize, cfg.Embedding.CacheTTL)
		}
		logging.Info().
			Str("url", cfg.Embedding.URL).
			Str("model", cfg.Embedding.Model).
			Int("cache_size", cfg.Embedding.CacheSize).
			Msg("Embedding service configured")
	} else {
		logging.Warn().Msg("EMBEDDING_URL not set, text queries are disabled")
	}

	engine, err := recommend.NewEngine(engineConfig(cfg), recommend.Dependencies{
		Catalog:  ds.Catalog,
		Index:    ds.Index,
		Graph:    ds.Graph,
		Embedder: emb,
		Texts:    ds.Texts,
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	report := engine.Validation()
	metrics.SetCatalogStats(ds.Catalog.Len(), ds.Index.Len(), report.Stats.Valid, report.Stats.Dangling)

	perfMon := middleware.NewPerformanceMonitor(performanceWindow)
	handler := api.NewHandler(engine, cfg, perfMon)
	if breaker != nil {
		handler.SetBreaker(breaker)
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security)), perfMon)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	// Leave the HTTP service room to drain before suture gives up on it.
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout + shutdownGrace
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if snapshots != nil && loaded.source == sourceJSON {
		tree.AddDataService(services.NewSnapshotWriterService(snapshots, loaded.raw, 0, logging.WithComponent("store")))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.Logger()))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("CourseCompass stopped")
}

// engineConfig maps service settings onto the engine's own config.
func engineConfig(cfg *config.Config) *recommend.Config {
	ec := recommend.DefaultConfig()
	ec.Limits.DefaultK = cfg.Recommend.DefaultLimit
	ec.Limits.MaxK = cfg.Recommend.MaxLimit
	ec.Similar.DefaultK = cfg.Recommend.SimilarLimit
	ec.Similar.InfoK = cfg.Recommend.InfoSimilar
	ec.Similar.CrossDepartmentK = cfg.Recommend.CrossDepartmentLimit
	ec.EmbedTimeout = cfg.Embedding.Timeout
	return ec
}
