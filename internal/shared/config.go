package shared

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBackendURL   = "http://localhost:3030"
	DefaultSentimentURL = "http://localhost:5050/"
)

type Config struct {
	AppEnv          string
	HTTPAddr        string
	MetricsAddr     string
	BackendURL      string // no trailing slash
	SentimentURL    string // exactly one trailing slash
	ImportWorkers   int
	AnnotateWorkers int
}

// Load resolves the process configuration once. A .env file in the working
// directory is read first; variables already set in the environment win.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env could not be parsed")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring invalid integer")
		}
		return def
	}
	return Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8000"),
		MetricsAddr:     env("METRICS_ADDR", ""),
		BackendURL:      NormalizeBackendURL(env("backend_url", DefaultBackendURL)),
		SentimentURL:    NormalizeSentimentURL(env("sentiment_analyzer_url", DefaultSentimentURL)),
		ImportWorkers:   atoi("IMPORT_WORKERS", 8),
		AnnotateWorkers: atoi("ANNOTATE_WORKERS", 4),
	}
}

// NormalizeBackendURL strips every trailing slash so endpoints ("/x") can be appended.
func NormalizeBackendURL(u string) string {
	return strings.TrimRight(u, "/")
}

// NormalizeSentimentURL makes u end with exactly one slash.
func NormalizeSentimentURL(u string) string {
	return strings.TrimRight(u, "/") + "/"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
