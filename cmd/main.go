package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"aetherium_ai_server/config"
	"aetherium_ai_server/internal/ai"
	"aetherium_ai_server/internal/api"
	"aetherium_ai_server/internal/logger"
)

func main() {
	// --- Load .env file ---
	// Must happen before viper reads the environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		log.Fatalf("Cannot build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	// --- Dependency Initialization ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	generator, err := newGenerator(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Cannot initialize AI providers", zap.Error(err))
	}
	apiHandler := api.NewAPIHandler(generator, zapLogger)

	// --- HTTP Server ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		zapLogger.Info("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(api.RequestID())
	router.Use(api.ZapLogger(zapLogger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		zapLogger.Warn("CORS_ALLOWED_ORIGINS is empty, allowing all origins")
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	router.Use(cors.New(corsConfig))

	api.RegisterRoutes(router, apiHandler)

	// exposes /metrics for both the HTTP and the flow collectors
	ginprometheus.NewPrometheus("gin").Use(router)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// flows wait on the model, so the write timeout follows AI_TIMEOUT
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("Starting API server", zap.String("address", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("API server listen error", zap.Error(err))
		}
		zapLogger.Info("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Shutting down server", zap.String("signal", sig.String()))

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()
	cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("API server forced shutdown", zap.Error(err))
	} else {
		zapLogger.Info("API server gracefully stopped.")
	}
	zapLogger.Info("Application exiting.")
}

// newGenerator wires the configured text and image providers into an ai.Generator.
func newGenerator(ctx context.Context, cfg config.Config, zapLogger *zap.Logger) (*ai.Generator, error) {
	openAICfg := ai.OpenAIConfig{
		APIKey:     cfg.OpenAIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		ChatModel:  cfg.ChatModel,
		ImageModel: cfg.OpenAIImageModel,
		Timeout:    cfg.AITimeout,
	}
	genAICfg := ai.GenAIConfig{
		APIKey:     cfg.GeminiAPIKey,
		TextModel:  cfg.GeminiTextModel,
		ImageModel: cfg.GeminiImageModel,
		Timeout:    cfg.AITimeout,
	}

	var (
		completer ai.Completer
		textModel string
	)
	switch cfg.TextProvider {
	case config.ProviderOpenAI:
		completer = ai.NewOpenAICompleter(openAICfg, zapLogger)
		textModel = cfg.ChatModel
	case config.ProviderGenAI:
		c, err := ai.NewGenAICompleter(ctx, genAICfg, zapLogger)
		if err != nil {
			return nil, fmt.Errorf("genai text client: %w", err)
		}
		completer = c
		textModel = cfg.GeminiTextModel
	default:
		return nil, fmt.Errorf("unknown text provider %q", cfg.TextProvider)
	}

	var imager ai.Imager
	switch cfg.ImageProvider {
	case config.ProviderOpenAI:
		imager = ai.NewOpenAIImager(openAICfg)
	case config.ProviderGenAI:
		im, err := ai.NewGenAIImager(ctx, genAICfg)
		if err != nil {
			return nil, fmt.Errorf("genai image client: %w", err)
		}
		imager = im
	default:
		return nil, fmt.Errorf("unknown image provider %q", cfg.ImageProvider)
	}

	opts := []ai.Option{ai.WithLogger(zapLogger)}
	if cfg.MaxPromptTokens > 0 {
		opts = append(opts, ai.WithPromptBudget(ai.NewTiktokenCounter(textModel), cfg.MaxPromptTokens))
	}
	zapLogger.Info("AI providers ready",
		zap.String("text_provider", cfg.TextProvider),
		zap.String("text_model", textModel),
		zap.String("image_provider", cfg.ImageProvider),
	)
	return ai.NewGenerator(completer, imager, opts...), nil
}
