package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/marketsquare/vendor-portal/internal/api"
	"github.com/marketsquare/vendor-portal/internal/apiclient"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
	"github.com/marketsquare/vendor-portal/internal/core/service"
	"github.com/marketsquare/vendor-portal/internal/core/session"
	"github.com/marketsquare/vendor-portal/internal/infrastructure/config"
	mongodb "github.com/marketsquare/vendor-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/marketsquare/vendor-portal/internal/infrastructure/db/redis"
	"github.com/marketsquare/vendor-portal/internal/infrastructure/navigation"
	"github.com/marketsquare/vendor-portal/internal/infrastructure/queue"
	"github.com/marketsquare/vendor-portal/internal/infrastructure/record"
	"github.com/marketsquare/vendor-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	// --- Session core ---
	recordStore, err := newRecordStore(cfg, redisClient)
	if err != nil {
		log.Fatal().Err(err).Msg("session record store setup failed")
	}
	sessions := session.NewStore(recordStore, logger.Component("session"))
	sessions.Restore(ctx)

	nav := navigation.NewTracker("/", logger.Component("navigation"))
	authAPI := apiclient.New(cfg.AuthAPIURL, sessions, nav, logger.Component("apiclient"))

	// --- Vendor discovery ---
	vendorRepo := mongodb.NewVendorRepository(db)
	if err := vendorRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("vendor index setup failed")
	}
	vendorCache := redisdb.NewVendorCache(redisClient)
	vendors := service.NewVendorService(vendorRepo, vendorCache, logger.Component("vendors"))

	// --- Inquiry pipeline ---
	inquiryRepo := mongodb.NewInquiryRepository(db)
	inquiries := service.NewInquiryService(vendorRepo, inquiryRepo, logger.Component("inquiries"))
	dispatcher := queue.NewDispatcher(cfg.Workers, inquiries, logger.Component("dispatcher"))
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Sessions:   sessions,
		AuthAPI:    authAPI,
		Vendors:    vendors,
		Dispatcher: dispatcher,
		Mongo:      db,
		Redis:      redisClient,
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// newRecordStore picks the persisted session backend from configuration.
func newRecordStore(cfg *config.Config, redisClient *redis.Client) (ports.RecordStore, error) {
	switch cfg.Session.Backend {
	case "redis":
		return redisdb.NewRecordStore(redisClient, cfg.Session.Name), nil
	default:
		return record.NewFileStore(cfg.Session.FilePath)
	}
}
