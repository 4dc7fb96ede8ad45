package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-agenda/internal/audit"
	"github.com/BruksfildServices01/studio-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-agenda/internal/db"
	"github.com/BruksfildServices01/studio-agenda/internal/infra/cache"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/routes"
)

func main() {
	ctx := context.Background()

	if err := config.LoadDotEnv(); err != nil {
		logging.New(os.Stderr, "info").Error(ctx, "failed to read .env", "err", err)
		os.Exit(1)
	}

	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Error(ctx, "database unavailable", "err", err)
		os.Exit(1)
	}
	defer dbpkg.Close(db)

	// --------------------------------------------------
	// Listing cache (optional)
	// --------------------------------------------------
	var listingCache invalidation.Cache = cache.Nop{}
	if cfg.RedisURL != "" {
		dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		rc, err := cache.Dial(dialCtx, cfg.RedisURL, cfg.ListingCacheTTL)
		cancel()
		if err != nil {
			log.Warn(ctx, "redis unavailable, listing cache disabled", "err", err)
		} else {
			defer rc.Close()
			listingCache = rc
		}
	}

	auditStore := audit.NewStore(db)
	auditDispatcher := audit.NewDispatcher(auditStore, log)
	defer auditDispatcher.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, log, listingCache, auditDispatcher, auditStore)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info(ctx, "server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "failed to start server", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "graceful shutdown failed", "err", err)
	}
	log.Info(ctx, "server stopped")
}
