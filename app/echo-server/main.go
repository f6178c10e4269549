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

	"examscore/app/echo-server/router"
	"examscore/business/prediction"
	"examscore/internal/artifact"
	"examscore/internal/rest"
	"examscore/pkg/config"
	"examscore/pkg/logger"
	"examscore/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting ExamScore Predictor", "version", cfg.App.Version)

	metrics.Init()

	// Load artifacts once. A failure is permanent for the process: the
	// predictor runs on the heuristic path instead of crashing.
	var artifacts prediction.Artifacts
	set, err := artifact.Load(cfg.Artifacts.ModelPath, cfg.Artifacts.ScalerPath)
	if err != nil {
		logger.Warn("Prediction artifacts unavailable, switching to heuristic mode", "error", err)
		metrics.DegradedMode.Set(1)
	} else {
		logger.Info("Prediction artifacts loaded",
			"model", cfg.Artifacts.ModelPath,
			"scaler", cfg.Artifacts.ScalerPath)
		artifacts = set
	}

	// Init service
	predictor := prediction.NewPredictor(artifacts)
	predictionService := prediction.NewService(predictor)

	// Init handler
	predictionHandler := rest.NewPredictionHandler(predictionService)
	healthHandler := rest.NewHealthHandler(predictionService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupPredictionRoutes(api, predictionHandler)
	router.SetupHealthRoutes(e, healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr, "mode", predictionService.Mode())
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
