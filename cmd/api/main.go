package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/barledger/bartab/internal/common/clock"
	"github.com/barledger/bartab/internal/common/uuid"
	"github.com/barledger/bartab/internal/config"
	"github.com/barledger/bartab/internal/handlers/rest"
	drinkRepo "github.com/barledger/bartab/internal/repositories/drink"
	paymentRepo "github.com/barledger/bartab/internal/repositories/payment"
	transactionRepo "github.com/barledger/bartab/internal/repositories/transaction"
	"github.com/barledger/bartab/internal/services/tab"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// Initialize repositories
	drinks, err := drinkRepo.NewRedis(&drinkRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create drink repository")
	}

	transactions, err := transactionRepo.NewRedis(&transactionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create transaction repository")
	}

	payments, err := paymentRepo.NewRedis(&paymentRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create payment repository")
	}

	// Initialize tab service
	tabService, err := tab.New(&tab.Config{
		DrinkRepo:       drinks,
		TransactionRepo: transactions,
		PaymentRepo:     payments,
		Clock:           &clock.DefaultClock{},
		UUIDGenerator:   uuid.New(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create tab service")
	}

	// Initialize HTTP handler
	handler, err := rest.New(&rest.Config{
		TabService:     tabService,
		Logger:         logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create HTTP handler")
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error shutting down HTTP server")
	}

	if err := redisClient.Close(); err != nil {
		logger.Error().Err(err).Msg("error closing Redis client")
	}

	logger.Info().Msg("server has been shut down")
}

// newLogger configures a zerolog logger using the provided format and level
func newLogger(format, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer = os.Stdout
	if strings.ToLower(strings.TrimSpace(format)) == "console" || strings.ToLower(strings.TrimSpace(format)) == "text" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}
