package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"mise/internal/assessment"
	assessmentmetrics "mise/internal/assessment/metrics"
	"mise/internal/compliance/registry"
	"mise/internal/platform/config"
	"mise/internal/platform/httpserver"
	"mise/internal/platform/logger"
	"mise/internal/platform/postgres"
	"mise/internal/platform/redis"
	"mise/internal/sections"
	httptransport "mise/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	reg, err := registry.New()
	if err != nil {
		log.Error("framework registry build failed", "error", err)
		os.Exit(1)
	}

	var assessmentStore assessment.Store = assessment.NewMemoryStore(reg)
	if cfg.PostgresURL != "" {
		db, err := postgres.Open(ctx, cfg.PostgresURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		assessmentStore = assessment.NewPostgresStore(db, reg)
	}

	var sectionStore sections.Store = sections.NewMemoryStore()
	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if rdb != nil {
		defer rdb.Close()
		sectionStore = sections.NewRedisStore(rdb)
	}

	assessmentSvc := assessment.NewService(assessmentStore, reg, assessmentmetrics.New(), log)
	sectionSvc := sections.NewService(sectionStore, reg, cfg.LiteMode)

	router := httptransport.NewRouter(log,
		httptransport.NewComplianceHandler(reg, log),
		httptransport.NewGeoHandler(),
		httptransport.NewRegionHandler(),
		httptransport.NewAssessmentHandler(assessmentSvc, log),
		httptransport.NewSectionsHandler(sectionSvc, log),
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting mise", "addr", cfg.Addr, "variant", cfg.Variant, "lite_mode", cfg.LiteMode)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
