// README: Entry point; loads config, runs migrations, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"safari/internal/config"
	httptransport "safari/internal/http"
	"safari/internal/infra"
	"safari/internal/modules/offer"
	"safari/internal/modules/provider"
	"safari/internal/modules/tour"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Log.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := infra.MigrateUp(cfg.DB.MigrationsURL, cfg.DB.DSN); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	providerStore := provider.NewStore(dbPool, redisClient)

	offerStore := offer.NewStore(dbPool)
	offerSvc := offer.NewService(offerStore, providerStore)

	providerSvc := provider.NewService(providerStore, offerSvc)

	tourStore := tour.NewStore(dbPool)
	tourSvc := tour.NewService(tourStore, offerSvc)

	handler := httptransport.NewRouter(logger, tourSvc, offerSvc, providerSvc)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server", zap.Error(err))
	}
}
