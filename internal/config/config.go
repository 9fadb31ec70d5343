package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Ranking   RankingConfig
	Embedding EmbeddingConfig
	Auth      AuthConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	WSPort      string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

// Enabled reports whether Postgres is configured at all; without it the
// weights store falls back to the JSON file.
func (c DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(c.DBHost) != ""
}

type RankingConfig struct {
	WeightsStore   string // "postgres" or "file"
	WeightsFile    string
	MaxRankJobs    int
	AdaptBatchSize int
}

type EmbeddingConfig struct {
	BaseURL string
}

type AuthConfig struct {
	JWTSecret string
}

// Enabled reports whether bearer-token validation is installed at the edge.
// Without a secret the service runs in trusted internal mode.
func (c AuthConfig) Enabled() bool {
	return strings.TrimSpace(c.JWTSecret) != ""
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, def int) int {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		WSPort:      opt("WS_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),
	}

	cfg.Ranking = RankingConfig{
		WeightsStore:   strings.ToLower(opt("WEIGHTS_STORE")),
		WeightsFile:    opt("WEIGHTS_FILE"),
		MaxRankJobs:    optInt("MAX_RANK_JOBS", 200),
		AdaptBatchSize: optInt("ADAPT_BATCH_SIZE", 100),
	}
	if cfg.Ranking.WeightsFile == "" {
		cfg.Ranking.WeightsFile = "model_weights.json"
	}
	if cfg.Ranking.WeightsStore == "" {
		cfg.Ranking.WeightsStore = "file"
	}

	cfg.Embedding = EmbeddingConfig{
		BaseURL: opt("EMBEDDING_BASE_URL"),
	}

	cfg.Auth = AuthConfig{
		JWTSecret: opt("JWT_SECRET"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
