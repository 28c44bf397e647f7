package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by GUESTCHAT_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("GUESTCHAT_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func AnthropicAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func CerebrasAPIKey() string {
	return os.Getenv("CEREBRAS_API_KEY")
}

// LLMProvider returns the configured LLM provider.
// Defaults to "openai" if not set.
// Valid values: openai, anthropic, gemini, cerebras, mock
func LLMProvider() string {
	return getEnv("LLM_PROVIDER", "openai")
}

// LLMAPIKey returns the API key for the configured LLM provider.
func LLMAPIKey() string {
	switch LLMProvider() {
	case "anthropic":
		return AnthropicAPIKey()
	case "gemini":
		return GeminiAPIKey()
	case "cerebras":
		return CerebrasAPIKey()
	case "mock":
		return ""
	default:
		return OpenAIAPIKey()
	}
}

// LLMModel returns the model override. Empty means the provider's default.
func LLMModel() string {
	return os.Getenv("LLM_MODEL")
}

// LLMTemperature returns the sampling temperature.
// Defaults to 0.7 if not set or outside [0, 2].
func LLMTemperature() float32 {
	t, err := strconv.ParseFloat(os.Getenv("LLM_TEMPERATURE"), 32)
	if err != nil || t < 0 || t > 2 {
		return 0.7
	}
	return float32(t)
}

func PromptTemplatePath() string {
	return getEnv("PROMPT_TEMPLATE_PATH", "prompts/prompt.txt")
}

// TenantSource selects where the tenant mapping lives: file or postgres.
func TenantSource() string {
	return getEnv("TENANT_SOURCE", "file")
}

func TenantsFile() string {
	return getEnv("TENANTS_FILE", "config/tenants.yaml")
}

// AssetSource selects where tenant faq/events text lives: file or minio.
func AssetSource() string {
	return getEnv("ASSET_SOURCE", "file")
}

func AssetsDir() string {
	return getEnv("ASSETS_DIR", "config")
}

func MinIOEndpoint() string {
	return getEnv("MINIO_ENDPOINT", "localhost:9000")
}

func MinIOAccessKey() string {
	return os.Getenv("MINIO_ACCESS_KEY")
}

func MinIOSecretKey() string {
	return os.Getenv("MINIO_SECRET_KEY")
}

func MinIOBucket() string {
	return getEnv("MINIO_BUCKET", "guestchat")
}

func MinIOPrefix() string {
	return os.Getenv("MINIO_PREFIX")
}

func MinIOUseSSL() bool {
	ssl, err := strconv.ParseBool(os.Getenv("MINIO_USE_SSL"))
	return err == nil && ssl
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

// LogFile returns an optional path for rotated JSON logs in addition to stderr.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}

// CORSAllowedOrigins returns the comma-separated CORS_ALLOWED_ORIGINS list.
// Defaults to every origin.
func CORSAllowedOrigins() []string {
	raw := getEnv("CORS_ALLOWED_ORIGINS", "*")
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
