package config

import (
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	OpenAIAPIKey string
	OpenAIModel  string
	DatabaseURL  string
	RedisAddr    string
	AppEnv       string
	IsStaging    bool
	IsProduction bool
	// IsOpenAIEnabled toggles the hosted generator (env IS_OPENAI_ENABLED: "1" or "0")
	IsOpenAIEnabled bool

	JWTSecret string
	Port      string

	// runtime tunables
	RateLimitWindowSeconds int
	RateLimitCapacity      int
	UserConcurrencyLimit   int
	DuplicateWindowSeconds int
	ChatHistoryLimit       int
)

// loadAppEnv loads .env only outside production; production relies on host env.
func loadAppEnv() {
	AppEnv = os.Getenv("APP_ENV")

	if AppEnv == "production" {
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}
}

func init() {
	loadAppEnv()

	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	OpenAIModel = os.Getenv("OPENAI_MODEL")
	DatabaseURL = os.Getenv("DATABASE_URL")
	RedisAddr = os.Getenv("REDIS_ADDR")

	AppEnv = os.Getenv("APP_ENV")
	if !slices.Contains([]string{"staging", "production"}, AppEnv) {
		AppEnv = "staging"
	}

	IsStaging = AppEnv == "staging"
	IsProduction = AppEnv == "production"

	IsOpenAIEnabled = os.Getenv("IS_OPENAI_ENABLED") == "1"

	// default model if not provided; can be overridden via OPENAI_MODEL env
	if OpenAIModel == "" {
		OpenAIModel = "gpt-4o"
	}

	JWTSecret = os.Getenv("JWT_SECRET_KEY")
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	RateLimitWindowSeconds = atoiOr(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 10)
	RateLimitCapacity = atoiOr(os.Getenv("RATE_LIMIT_CAPACITY"), 5)
	UserConcurrencyLimit = atoiOr(os.Getenv("USER_CONCURRENCY_LIMIT"), 2)
	DuplicateWindowSeconds = atoiOr(os.Getenv("DUPLICATE_WINDOW_SECONDS"), 45)
	ChatHistoryLimit = atoiOr(os.Getenv("CHAT_HISTORY_LIMIT"), 10)

	if IsProduction && JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY must be set in production")
	}

	log.Printf("[config] AppEnv=%s IsStaging=%v IsProduction=%v", AppEnv, IsStaging, IsProduction)
	log.Printf("[config] IsOpenAIEnabled=%v OpenAIKeyPresent=%v OpenAIModel=%s", IsOpenAIEnabled, OpenAIAPIKey != "", OpenAIModel)
	log.Printf("[config] RateLimit window=%ds capacity=%d userConc=%d dupWindow=%ds historyLimit=%d",
		RateLimitWindowSeconds, RateLimitCapacity, UserConcurrencyLimit, DuplicateWindowSeconds, ChatHistoryLimit)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
