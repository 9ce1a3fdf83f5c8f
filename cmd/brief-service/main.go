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

	"golang-daily-brief/internal/brief/config"
	delivery "golang-daily-brief/internal/brief/delivery/http"
	_ "golang-daily-brief/internal/brief/docs"
	"golang-daily-brief/internal/brief/service"
	"golang-daily-brief/pkg/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the daily brief HTTP service",
	Run:   runServe,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Refreshes the daily brief once and exits",
	Run:   runOnce,
}

func loadConfigAndLogger() (*config.Config, *logger.Logger) {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return cfg, appLogger
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := loadConfigAndLogger()
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Daily Brief Service",
		logger.Field("name", cfg.App.Name),
		logger.StringField("store", cfg.Store.Driver),
		logger.IntField("feeds", len(cfg.Feed.URLs)),
	)
	if cfg.Cron.Secret == "" {
		appLogger.Warn("CRON_SECRET is empty, every update request will be rejected")
	}

	briefSvc, cleanup, err := newBriefService(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize brief service", logger.ErrorField(err))
	}
	defer cleanup()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(delivery.RequestContext())
	e.Use(delivery.RequestLogger(appLogger))

	// Initialize handlers and routes
	briefHandler := delivery.NewBriefHandler(briefSvc, appLogger)
	cronAuth := delivery.CronAuth(service.NewAuthenticator(cfg.Cron.Secret), appLogger)
	briefHandler.RegisterRoutes(e.Group("/api"), cronAuth)

	e.GET("/healthz", delivery.Health)
	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// In-flight update runs keep going until they finish or the timeout hits.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runOnce(cmd *cobra.Command, args []string) {
	cfg, appLogger := loadConfigAndLogger()
	defer func() { _ = appLogger.Sync() }()

	briefSvc, cleanup, err := newBriefService(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize brief service", logger.ErrorField(err))
	}
	defer cleanup()

	result, err := briefSvc.UpdateDailyBrief(cmd.Context())
	if err != nil {
		appLogger.Error("Daily brief update failed", logger.ErrorField(err))
		cleanup()
		_ = appLogger.Sync()
		os.Exit(1)
	}

	fmt.Printf("Stored %d news items at %s\n", result.Count, result.UpdatedAt)
}

// @title Daily Brief API
// @version 1.0
// @description Aggregates market news feeds, summarizes them with Gemini and serves the cached daily brief.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{Use: "brief-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-brief.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing brief-service CLI: %s\n", err)
		os.Exit(1)
	}
}
