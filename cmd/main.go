// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shivanand-hulikatti/activity-signup/internal/config"
	"github.com/Shivanand-hulikatti/activity-signup/internal/handler"
	"github.com/Shivanand-hulikatti/activity-signup/internal/i18n"
	"github.com/Shivanand-hulikatti/activity-signup/internal/metrics"
	"github.com/Shivanand-hulikatti/activity-signup/internal/repository"
	"github.com/Shivanand-hulikatti/activity-signup/internal/service"
	"github.com/Shivanand-hulikatti/activity-signup/internal/session"
	"github.com/Shivanand-hulikatti/activity-signup/internal/view"
)

func main() {
	// ── 1. Load configuration ─────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	upstream := metrics.NewUpstream()
	client := &http.Client{Timeout: cfg.UpstreamTimeout}
	activityRepo := repository.NewActivityRepository(client, cfg.APIBaseURL, upstream)
	activitySvc := service.NewActivityService(activityRepo, i18n.NewTranslator(cfg.DefaultLocale))
	sessions := session.NewStore(cfg.SessionTTL, nil)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	activityHandler := handler.NewActivityHandler(activitySvc, sessions, renderer)
	log.Printf("✓ Using activities API at %s", cfg.APIBaseURL)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := handler.NewRouter(activityHandler, upstream.Handler())

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Printf("✓ Server listening on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}
