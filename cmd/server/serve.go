package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/norce-drilling/field-service/internal/adapters/primary/http/handlers"
	"github.com/norce-drilling/field-service/internal/adapters/primary/http/middleware"
	"github.com/norce-drilling/field-service/internal/adapters/secondary/projection"
	"github.com/norce-drilling/field-service/internal/adapters/secondary/sqlite"
	"github.com/norce-drilling/field-service/internal/adapters/secondary/usagefile"
	"github.com/norce-drilling/field-service/internal/config"
	"github.com/norce-drilling/field-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	initLogger(cfg)

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters
	gw := sqlite.NewGateway(cfg.Database.Path)
	defer func() {
		if err := gw.Close(); err != nil {
			log.WithError(err).Warn("close database")
		}
	}()
	if err := gw.Ping(cmd.Context()); err != nil {
		// the gateway retries on the next request
		log.WithError(err).Warn("database not reachable at startup")
	}

	fieldRepo := sqlite.NewFieldRepository(gw)
	conversionSetRepo := sqlite.NewConversionSetRepository(gw)
	projectionClient := projection.NewProjectionClient(&cfg.Projection)
	usageStore := usagefile.NewStore(cfg.Usage.FilePath)

	// Core Services
	fieldSvc := services.NewFieldService(fieldRepo)
	conversionSetSvc := services.NewConversionSetService(conversionSetRepo, fieldSvc, projectionClient)
	usageSvc := services.NewUsageService(usageStore, cfg.Usage.BackupInterval)

	// Primary Adapter
	h := handlers.New(fieldSvc, conversionSetSvc, usageSvc)
	router := newRouter(cfg, h, gw)

	// Periodic usage backup
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(fmt.Sprintf("@every %s", cfg.Usage.BackupInterval), usageSvc.Flush); err != nil {
		return fmt.Errorf("schedule usage backup: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("starting server on %s%s", addr, cfg.Server.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()
		log.Info("shutting down server...")

		<-scheduler.Stop().Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)

		usageSvc.Flush()
		if err != nil {
			return fmt.Errorf("server forced shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

func newRouter(cfg *config.Config, h *handlers.Handler, gw *sqlite.Gateway) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	if cfg.Metrics.Enabled {
		metrics := middleware.NewMetrics()
		router.Use(metrics.Handler())
		router.GET("/metrics", gin.WrapH(metrics.Exporter()))
	}

	api := router.Group(cfg.Server.BasePath)
	h.RegisterRoutes(api)

	router.GET("/healthz", handlers.Health(gw))
	return router
}
