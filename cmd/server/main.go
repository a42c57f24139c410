package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/lokeshbhai007/faad-do-dsa/internal/analysis"
	"github.com/lokeshbhai007/faad-do-dsa/internal/config"
	"github.com/lokeshbhai007/faad-do-dsa/internal/handlers"
	"github.com/lokeshbhai007/faad-do-dsa/internal/llm"
	_ "github.com/lokeshbhai007/faad-do-dsa/internal/llm/gemini"
	"github.com/lokeshbhai007/faad-do-dsa/internal/metrics"
	"github.com/lokeshbhai007/faad-do-dsa/internal/middleware"
	"github.com/lokeshbhai007/faad-do-dsa/internal/prompts"
	mongorepo "github.com/lokeshbhai007/faad-do-dsa/internal/repositories/mongo"
	"github.com/lokeshbhai007/faad-do-dsa/internal/routers"
	"github.com/lokeshbhai007/faad-do-dsa/internal/utils"
)

func main() {
	utils.InitLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.String("prompt_style", cfg.PromptStyle))

	// storage: one connection pool for the process lifetime
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer startupCancel()

	client, err := mongorepo.NewClient(startupCtx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	db, err := client.Database(cfg.DBName)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}

	questionRepo, err := mongorepo.NewQuestionRepo(startupCtx, db)
	if err != nil {
		logger.Fatal("Failed to initialize question repository", zap.Error(err))
	}

	reviewRepo, err := mongorepo.NewReviewRepo(startupCtx, db)
	if err != nil {
		logger.Fatal("Failed to initialize review repository", zap.Error(err))
	}

	// prompt manager
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	analyzer := analysis.NewAnalyzer(aiProvider, promptManager, questionRepo, cfg.PromptStyle, logger)

	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, logger)
	questionHandler := handlers.NewQuestionHandler(questionRepo, logger)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, logger)
	healthHandler := handlers.NewHealthHandler()

	var limiter routers.RateLimitable
	if cfg.RedisAddr != "" {
		limiter = middleware.NewRateLimiter(cfg.RedisAddr, cfg.RateLimit, cfg.RateLimitWindow, logger)
		logger.Info("Rate limiting enabled", zap.String("redis_addr", cfg.RedisAddr))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization", "X-API-Key"},
		AllowCredentials: true,
	}))

	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware)

	routers.HealthRoutes(router, healthHandler)
	routers.APIRoutes(router, analyzeHandler, questionHandler, reviewHandler, limiter)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Analyzer service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Analyzer service shutting down...")

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Info("Analyzer service exited")
}
