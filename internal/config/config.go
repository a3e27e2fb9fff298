package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv, AppPort string
	CORSOrigins     []string

	// GeminiKey is the server-side fallback credential used when a
	// request carries no api_key of its own.
	GeminiKey    string
	DefaultModel string
	QuizModel    string
	DryRun       bool

	QuotaLimit int

	RedisAddr    string
	RedisDB      int
	QuizCacheTTL time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:       get("APP_ENV", "dev"),
		AppPort:      get("APP_PORT", "8000"),
		CORSOrigins:  split(get("CORS_ORIGINS", "http://localhost:5173")),
		GeminiKey:    get("GEMINI_API_KEY", ""),
		DefaultModel: get("GEMINI_MODEL", "gemini-1.5-flash"),
		QuizModel:    get("QUIZ_MODEL", "gemini-1.5-pro"),
		DryRun:       parseBool(get("PROVIDER_DRY_RUN", "false")),
		QuotaLimit:   atoi(get("QUOTA_LIMIT", "60000")),
		RedisAddr:    get("REDIS_ADDR", ""),
		RedisDB:      atoi(get("REDIS_DB", "0")),
		QuizCacheTTL: duration(get("QUIZ_CACHE_TTL", "24h")),
	}
}

func get(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
func atoi(s string) int       { i, _ := strconv.Atoi(s); return i }
func parseBool(s string) bool { b, _ := strconv.ParseBool(s); return b }

// duration parses s, treating anything unparseable as zero (cache off).
func duration(s string) time.Duration { d, _ := time.ParseDuration(s); return d }
func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func GetEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}
