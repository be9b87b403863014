// Command server runs the banking records API.
//
// @title           Banking Records API
// @version         1.0
// @description     Record API for users, accounts and transactions, gated by signed bearer tokens.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	_ "github.com/coreledger/banking-api/docs"
	"github.com/coreledger/banking-api/internal/api"
	"github.com/coreledger/banking-api/internal/infrastructure/config"
	mongodb "github.com/coreledger/banking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/coreledger/banking-api/internal/infrastructure/db/redis"
	"github.com/coreledger/banking-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Money values marshal as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	// The signing key is decoded once; a missing or malformed secret is
	// fatal before the server ever accepts a request.
	signingKey, err := cfg.SigningKey()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid token signing key")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	accountRepo := mongodb.NewAccountRepository(db)
	transactionRepo := mongodb.NewTransactionRepository(db)

	for _, idx := range []interface{ EnsureIndexes(context.Context) error }{userRepo, accountRepo, transactionRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure indexes")
		}
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e := api.NewRouter(api.RouterConfig{
		Users:        userRepo,
		Accounts:     accountRepo,
		Transactions: transactionRepo,
		TokenKey:     signingKey,
		Guard:        redisdb.NewIdempotencyGuard(rdb),
		Mongo:        db,
		Redis:        rdb,
		Logger:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("banking api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
