package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port      string        `envconfig:"PORT" default:"8080"`
	DBDSN     string        `envconfig:"DB_DSN" default:"tradepost.db"`
	JWTSecret string        `envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	LogFile   string        `envconfig:"LOG_FILE"`
	Env       string        `envconfig:"APP_ENV" default:"development"`
}

// Load reads .env (when present) and the process environment. A
// missing signing secret is a fatal startup condition, not a
// per-request error.
func Load() Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("[config] %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("[config] JWT_SECRET must be set")
	}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL=%s APP_ENV=%s", cfg.Port, cfg.DBDSN, cfg.TokenTTL, cfg.Env)
	return cfg
}
