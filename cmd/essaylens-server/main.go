package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/hvnguyen/essaylens/internal/analyzer"
	"github.com/hvnguyen/essaylens/internal/config"
	"github.com/hvnguyen/essaylens/internal/grammar"
	"github.com/hvnguyen/essaylens/internal/inference"
	"github.com/hvnguyen/essaylens/internal/inference/openai"
	"github.com/hvnguyen/essaylens/internal/samples"
	"github.com/hvnguyen/essaylens/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	setupLogger(os.Getenv("ESSAYLENS_DEBUG") != "")

	cfg, err := config.Load(os.Getenv("ESSAYLENS_CONFIG"))
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	if cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, inference.DefaultMaxRetryAttempts)
	defer func() {
		_ = openaiClient.Close()
	}()

	grammarClient := grammar.NewClient(cfg.LanguageTool.Username, cfg.LanguageTool.APIKey, cfg.LanguageTool.BaseURL)
	defer func() {
		_ = grammarClient.Close()
	}()

	bank, err := samples.Load()
	if err != nil {
		return fmt.Errorf("samples.Load() > %w", err)
	}

	handler := server.NewHandler(analyzer.New(openaiClient, grammarClient), bank)

	router := gin.Default()
	router.Use(corsMiddleware(cfg.Server.AllowedOrigin))
	handler.Register(router)

	slog.Default().Info("starting server", "address", cfg.Server.Address)
	return router.Run(cfg.Server.Address)
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})),
	)
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Max-Age", "3600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
