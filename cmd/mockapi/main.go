// cmd/mockapi/main.go
package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/config"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/mockapi"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/pkg/auth"
	"github.com/mahabubulhasibshawon/dexter-storefront.git/pkg/logger"
)

const (
	defaultEmail    = "customer@dexter.example"
	defaultPassword = "321dsaf"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	email := envOr("MOCK_API_EMAIL", defaultEmail)
	data, err := mockapi.Seeded(email, envOr("MOCK_API_PASSWORD", defaultPassword))
	if err != nil {
		log.WithError(err).Fatal("failed to seed data")
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	srv := &http.Server{
		Addr:              cfg.MockAPIAddr,
		Handler:           mockapi.NewServer(data, tokens, logrus.NewEntry(log)).Routes(cfg.APIBasePath),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithFields(logrus.Fields{
		"addr":  cfg.MockAPIAddr,
		"base":  cfg.APIBasePath,
		"login": email,
	}).Info("mock API listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("failed to serve")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
