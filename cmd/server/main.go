package main

import (
	"fmt"
	"log"

	"nova-packaging/internal/auth"
	"nova-packaging/internal/catalog"
	"nova-packaging/internal/config"
	"nova-packaging/internal/contact"
	"nova-packaging/internal/handlers"
	"nova-packaging/internal/mailer"
	"nova-packaging/internal/server"
	"nova-packaging/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	st, err := openStore(cfg)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}

	products := catalog.NewManager(st, logger)
	messages := contact.NewManager(st, logger)
	gate := auth.NewGate(st, logger, cfg.AdminEmail, cfg.AdminPasswordHash)
	mail := mailer.New(cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSPublicKey)
	if mail == nil {
		logger.Warn("EmailJS keys not configured, outbound mail disabled")
	}

	h := handlers.New(products, messages, gate, mail, logger)
	r := server.NewRouter(cfg, h, server.DefaultTemplates)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// openStore picks the backend: the key-value table in Postgres when
// DB_DSN is set, JSON files under DATA_DIR otherwise.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DBDSN != "" {
		db, err := store.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(db)
	}
	return store.NewFileStore(cfg.DataDir)
}
