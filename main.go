package main

import (
	"context"
	"embed"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"viromex/app"
	"viromex/internal"
	"viromex/internal/config"
	"viromex/ui"
)

//go:embed ui/templates/*.html
var embeddedFiles embed.FS

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewLoggerFromString(appConfig.Log.Level)
	logger.Debug("Configuration loaded: port=%s maxUploadBytes=%d", appConfig.Server.Port, appConfig.Server.MaxUploadBytes)

	service := app.NewAnalysisService()

	// Optionally preload a table so the dashboard has data before the
	// first upload.
	if appConfig.Data.DataFile != "" {
		analysis, err := service.AnalyzeFile(appConfig.Data.DataFile)
		if err != nil {
			log.Fatalf("Failed to preload %s: %v", appConfig.Data.DataFile, err)
		}
		if analysis.DroppedRows > 0 {
			logger.Warn("Preload dropped %d of %d rows from %s", analysis.DroppedRows, analysis.TotalRows, appConfig.Data.DataFile)
		}
		logger.Info("Preloaded %s as analysis %s", appConfig.Data.DataFile, analysis.ID)
	}

	server, err := ui.NewServer(service, embeddedFiles, appConfig.Server.MaxUploadBytes)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	httpServer := &http.Server{
		Addr:    ":" + appConfig.Server.Port,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting Virome Explorer on port %s", appConfig.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
	logger.Info("Server stopped")
}
