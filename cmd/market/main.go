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

	"github.com/Skotchmaster/market_items/internal/config"
	"github.com/Skotchmaster/market_items/internal/db"
	"github.com/Skotchmaster/market_items/internal/events"
	"github.com/Skotchmaster/market_items/internal/handlers"
	"github.com/Skotchmaster/market_items/internal/logging"
	"github.com/Skotchmaster/market_items/internal/repo"
	"github.com/Skotchmaster/market_items/internal/searchindex"
	"github.com/Skotchmaster/market_items/internal/service"
	"github.com/Skotchmaster/market_items/internal/tokens"
	httpserver "github.com/Skotchmaster/market_items/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	ctx := context.Background()
	gdb, err := db.Open(ctx, cfg)
	if err != nil {
		logger.Error("db_init_failed", "error", err)
		os.Exit(1)
	}

	publisher := events.New(cfg.KafkaBrokers)

	var index service.ItemIndex
	if cfg.ESURL != "" {
		idx, err := searchindex.New(cfg.ESURL, cfg.ESUser, cfg.ESPassword, cfg.ESIndex)
		if err != nil {
			logger.Warn("search_index_disabled", "error", err)
		} else {
			index = idx
		}
	}

	store := repo.NewGormRepo(gdb)
	tks := tokens.NewService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)
	catalog := service.NewCatalogService(store, publisher, index)

	e := httpserver.NewEcho(logger)

	httpserver.Register(e, &httpserver.Deps{
		DB:             gdb,
		Variant:        cfg.APIVariant,
		Verifier:       tks,
		Realm:          cfg.JWTRealm,
		AuthRateRPS:    cfg.AuthRateRPS,
		AuthRateBurst:  cfg.AuthRateBurst,
		ProductHandler: handlers.NewProductHandler(catalog),
		SearchHandler:  handlers.NewSearchHandler(catalog),
		AuthHandler:    handlers.NewAuthHandler(service.NewAuthService(store, tks, publisher)),
		UserHandler:    handlers.NewUserHandler(service.NewUserService(store)),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		logger.Info("server_started", "addr", srv.Addr, "variant", cfg.APIVariant, "db_driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("db_close_error", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("kafka_close_error", "error", err)
	}

	logger.Info("shutdown_complete")
}
