package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/xaenox/career-guide/internal/advisor"
	"github.com/xaenox/career-guide/internal/api"
	"github.com/xaenox/career-guide/internal/session"
	"github.com/xaenox/career-guide/pkg/config"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize the advice client
	var adv advisor.Advisor
	switch cfg.Advisor.Provider {
	case "openai":
		logger.Info("Using OpenAI advisor", zap.String("model", cfg.Advisor.OpenAIModel))
		adv = advisor.NewOpenAIAdvisor(cfg.Advisor.OpenAIAPIKey, cfg.Advisor.OpenAIModel, logger)
	default:
		logger.Info("Using Gemini advisor", zap.String("model", cfg.Advisor.GeminiModel))
		gemini, err := advisor.NewGeminiAdvisor(context.Background(), cfg.Advisor.GeminiAPIKey, cfg.Advisor.GeminiModel, logger)
		if err != nil {
			logger.Fatal("Failed to create Gemini client", zap.Error(err))
		}
		defer gemini.Close()
		adv = gemini
	}

	// Initialize session state
	sessions := session.NewManager(cfg.Session.TTL, logger)
	defer sessions.Close()

	handler := api.NewHandler(sessions, adv, cfg.Advisor.Timeout, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * cfg.Advisor.Timeout,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
