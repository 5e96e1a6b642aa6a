package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bus_safety/internal/api"
	"bus_safety/internal/api/view"
	"bus_safety/internal/app/service"
	"bus_safety/internal/common/security"
	"bus_safety/internal/domain/repository"
	"bus_safety/internal/platform/config"
	"bus_safety/internal/platform/database"
	"bus_safety/web"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("opening database", zap.Error(err), zap.String("path", cfg.DBPath))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrating database", zap.Error(err))
	}
	logger.Info("database ready", zap.String("path", cfg.DBPath))

	userRepo := repository.NewSQLiteUserRepository(db)
	bookingRepo := repository.NewSQLiteBookingRepository(db)

	validate := validator.New()
	authService := service.NewAuthService(userRepo, validate)
	bookingService := service.NewBookingService(bookingRepo, validate)
	userService := service.NewUserService(userRepo)
	reportService := service.NewReportService(userRepo, bookingRepo)

	sessions := security.NewSessionManager(cfg.JWTKey, cfg.SessionTTL)

	renderer, err := view.New(web.Templates)
	if err != nil {
		logger.Fatal("parsing templates", zap.Error(err))
	}

	router := api.NewRouter(logger, sessions, renderer, authService, bookingService, userService, reportService)

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("port", cfg.AppPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-stop

	logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
