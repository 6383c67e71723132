package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	SessionSecret string

	// the single admin identity; the hash is bcrypt
	AdminEmail        string
	AdminPasswordHash string

	// DataDir backs the file store; DBDSN, when set, switches the
	// collections to the key-value table in Postgres instead.
	DataDir string
	DBDSN   string

	// EmailJS keys; leaving them empty disables outbound mail
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:        os.Getenv("SERVER_PORT"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		DataDir:           os.Getenv("DATA_DIR"),
		DBDSN:             os.Getenv("DB_DSN"),
		EmailJSServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSPublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.AdminEmail == "" {
		log.Fatal("ADMIN_EMAIL is not set")
	}
	if cfg.AdminPasswordHash == "" {
		log.Fatal("ADMIN_PASSWORD_HASH is not set")
	}

	return cfg
}
