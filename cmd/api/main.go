package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storefront/catalog-api/internal/api"
	"github.com/storefront/catalog-api/internal/core/service"
	"github.com/storefront/catalog-api/internal/infrastructure/config"
	mongodb "github.com/storefront/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storefront/catalog-api/internal/infrastructure/db/redis"
	"github.com/storefront/catalog-api/internal/infrastructure/storage"
	"github.com/storefront/catalog-api/pkg/logger"

	_ "github.com/storefront/catalog-api/docs" // swagger docs
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Blob store ---
	minioCfg := storage.Config{
		Endpoint:      cfg.Minio.Endpoint,
		AccessKey:     cfg.Minio.AccessKey,
		SecretKey:     cfg.Minio.SecretKey,
		Bucket:        cfg.Minio.Bucket,
		UseSSL:        cfg.Minio.UseSSL,
		PublicBaseURL: cfg.Minio.PublicBaseURL,
	}
	minioClient, err := storage.NewClient(minioCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create blob store client")
	}
	if err := storage.EnsureBucket(ctx, minioClient, cfg.Minio.Bucket); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure blob store bucket")
	}
	images := storage.NewImageStore(minioClient, minioCfg)

	// --- Repositories ---
	customerRepo := mongodb.NewCustomerRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	if err := customerRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create customer indexes")
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	throttle := redisdb.NewLoginThrottle(rdb)
	customers := service.NewCustomerService(customerRepo, tokens, images, throttle, log)
	products := service.NewProductService(productRepo, images, log)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := customers.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin account")
		}
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Customers: customers,
		Products:  products,
		Tokens:    tokens,
		Mongo:     db,
		Redis:     rdb,
		Blobs:     minioClient,
		Bucket:    cfg.Minio.Bucket,
		Log:       log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
