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

	"go-form-relay/config"
	_ "go-form-relay/docs" // Important for Swagger
	v1 "go-form-relay/internal/delivery/http/v1"
	"go-form-relay/internal/domain"
	"go-form-relay/internal/repository/gsheets"
	"go-form-relay/internal/repository/xlsx"
	"go-form-relay/internal/usecase"
	"go-form-relay/pkg/email"
	"go-form-relay/pkg/logger"
	"go-form-relay/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Form Relay API
// @version         1.0
// @description     Relays web form submissions into Google Sheets and email.
// @host            localhost:5000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger.Init(level)
	logger.Log.Info("Starting form relay", "port", cfg.Port, "store_driver", cfg.SheetStoreDriver)

	// 3. Setup Sheet Store
	store, err := newSheetStore(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("Failed to set up sheet store", "error", err)
		os.Exit(1)
	}

	// 4. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications will fail")
	}

	// 5. Setup UseCases
	validate := validation.New()
	submissionUC := usecase.NewSubmissionUsecase(store, emailService, cfg)
	contactUC := usecase.NewContactUsecase(emailService, validate, cfg)
	subscriptionUC := usecase.NewSubscriptionUsecase(store, emailService, validate, cfg)
	healthUC := usecase.NewHealthUsecase(cfg, emailService.IsConfigured())

	// 6. Setup Router
	gin.SetMode(cfg.GinMode)
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC:   submissionUC,
		ContactUC:      contactUC,
		SubscriptionUC: subscriptionUC,
		HealthUC:       healthUC,
		Config:         cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server is running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newSheetStore(ctx context.Context, cfg *config.Config) (domain.SheetStore, error) {
	switch cfg.SheetStoreDriver {
	case config.StoreDriverGoogle:
		return gsheets.NewSheetStore(ctx, cfg)
	case config.StoreDriverXLSX:
		return xlsx.NewSheetStore(cfg.XLSXStoreDir)
	default:
		return nil, fmt.Errorf("unknown SHEET_STORE_DRIVER %q", cfg.SheetStoreDriver)
	}
}
