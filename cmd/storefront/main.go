// cmd/storefront/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/adapters/httpapi"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/adapters/memory"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/adapters/web"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/application"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/config"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/ports"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/pkg/logger"
)

type resettable interface {
	DeleteAll(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	if cfg.ResetSession {
		if r, ok := kv.(resettable); ok {
			if err := r.DeleteAll(ctx); err != nil {
				log.WithError(err).Fatal("failed to reset session storage")
			}
			log.Info("session storage reset")
		}
	}

	client := httpapi.NewClient(httpapi.ClientConfig{
		BaseURL: cfg.APIBaseURL(),
		Timeout: cfg.APITimeout,
		Logger:  logger.Component(log, "gateway"),
	})
	appLog := logrus.NewEntry(log)
	sessions := application.NewSessionStore(kv, appLog)
	ctrl := application.NewController(
		application.NewAuthService(client, sessions, appLog),
		application.NewCatalogService(client, sessions, cfg.PageLimit, appLog),
		application.NewOrderService(client, cfg.PageLimit),
		appLog,
	)
	ctrl.Start(ctx)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           web.NewServer(ctrl, kv, appLog).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.WithFields(logrus.Fields{
		"addr":    cfg.ListenAddr,
		"api":     cfg.APIBaseURL(),
		"backend": cfg.StoreBackend,
	}).Info("storefront listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("failed to serve")
	}
}

// openStore connects the configured session backend and returns a close func.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (ports.KeyValueStorePort, func()) {
	switch cfg.StoreBackend {
	case "redis":
		store := redis.NewStore(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, cfg.RedisKeyPrefix, cfg.RedisTTL)
		if err := store.Ping(ctx); err != nil {
			log.WithError(err).Fatal("failed to connect to Redis")
		}
		return store, func() { _ = store.Close() }
	case "postgres":
		db, err := sql.Open("postgres", cfg.PostgresDSN())
		if err != nil {
			log.WithError(err).Fatal("failed to connect to DB")
		}
		if err := db.PingContext(ctx); err != nil {
			log.WithError(err).Fatal("failed to ping DB")
		}
		if err := repository.InitSchema(ctx, db); err != nil {
			log.WithError(err).Fatal("failed to init DB")
		}
		return repository.NewPostgresRepository(db), func() { _ = db.Close() }
	default:
		return memory.NewStore(), func() {}
	}
}
