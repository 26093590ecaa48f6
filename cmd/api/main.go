package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"pet-grooming-api/internal/adapters/auth/okta"
	pg "pet-grooming-api/internal/adapters/storage/postgres"
	"pet-grooming-api/internal/config"
	"pet-grooming-api/internal/ports/auth"
	"pet-grooming-api/internal/router"

	"go.uber.org/zap"
)

// @title Pet Grooming API
// @version 1.0
// @description CRUD over grooming locations and profile-owned pets.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Postgres + migraciones si hay DSN; si no, repos in-memory (dev).
	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		db, err = pg.Open(cfg.DatabaseDSN)
		if err != nil {
			logger.Fatal("opening database", zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		if err := pg.RunMigrations(db, cfg.MigrationsPath, logger); err != nil {
			logger.Fatal("running migrations", zap.Error(err))
		}
	} else {
		logger.Warn("DB_DSN not set, using in-memory repositories")
	}

	// Verifier de Okta si hay issuer; sin issuer queda el modo dev
	// (header X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if cfg.Okta.Issuer != "" {
		// El contexto gobierna el refresh del JWKS en background: tiene que
		// vivir lo que viva el server, no cancelarse después del arranque.
		v, err := okta.NewVerifier(context.Background(), cfg.Okta.Issuer, cfg.Okta.Audience)
		if err != nil {
			logger.Fatal("building okta verifier", zap.Error(err))
		}
		verifier = v
	} else {
		logger.Warn("OKTA_ISSUER not set, auth runs in dev mode")
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsLocal() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
