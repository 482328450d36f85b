package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minesight/rockfall-backend-go/internal/api"
	"github.com/minesight/rockfall-backend-go/internal/auth"
	"github.com/minesight/rockfall-backend-go/internal/config"
	"github.com/minesight/rockfall-backend-go/internal/database"
	"github.com/minesight/rockfall-backend-go/internal/handler"
	"github.com/minesight/rockfall-backend-go/internal/logging"
	"github.com/minesight/rockfall-backend-go/internal/ml"
	"github.com/minesight/rockfall-backend-go/internal/repository"
	"github.com/minesight/rockfall-backend-go/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the monitoring API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	logger, err := logging.NewLogger("rockfall-backend")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	sensorRepo := repository.NewSensorRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	authService := service.NewAuthService(userRepo, tokens)
	sensorService := service.NewSensorService(sensorRepo)
	alertService := service.NewAlertService(alertRepo, sensorRepo)
	ingestService := service.NewIngestService(sensorRepo, alertRepo, logger)
	statsService := service.NewStatsService(statsRepo)
	predictor := ml.NewPredictor(cfg.ModelDir, rng, logger)

	router := api.SetupRouter(api.Dependencies{
		Config:  cfg,
		Logger:  logger,
		Tokens:  tokens,
		Auth:    handler.NewAuthHandler(authService),
		Sensors: handler.NewSensorHandler(sensorService, ingestService, statsService, cfg.MaxUploadBytes),
		Alerts:  handler.NewAlertHandler(alertService, statsService),
		Predict: handler.NewPredictHandler(predictor),
	})

	server := &http.Server{
		Addr:           cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("server starting", zap.String("addr", cfg.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
