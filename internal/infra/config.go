package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GoogleCredentials is the service-account bundle used to reach the
// spreadsheet API.
type GoogleCredentials struct {
	ProjectID    string
	PrivateKeyID string
	PrivateKey   string
	ClientEmail  string
	ClientID     string
	CertURL      string
}

// Complete reports whether the bundle carries enough material to sign
// requests.
func (g GoogleCredentials) Complete() bool {
	return g.ClientEmail != "" && g.PrivateKey != ""
}

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	SpreadsheetID      string
	Google             GoogleCredentials
	CORSAllowedOrigins []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
	IdempotencyWindow  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. A missing spreadsheet id is not a load error: the
// initialize endpoint reports it per request so the site itself can still
// serve.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SpreadsheetID: os.Getenv("GOOGLE_SHEET_ID"),
		Google: GoogleCredentials{
			ProjectID:    os.Getenv("GOOGLE_PROJECT_ID"),
			PrivateKeyID: os.Getenv("GOOGLE_PRIVATE_KEY_ID"),
			PrivateKey:   unescapeKey(os.Getenv("GOOGLE_PRIVATE_KEY")),
			ClientEmail:  os.Getenv("GOOGLE_CLIENT_EMAIL"),
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			CertURL:      os.Getenv("GOOGLE_CERT_URL"),
		},
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		IdempotencyWindow:  time.Second * time.Duration(getEnvInt("IDEMPOTENCY_WINDOW_SECONDS", 60)),
	}

	return cfg, nil
}

// unescapeKey restores real newlines in a PEM key passed through a single-line
// environment variable.
func unescapeKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
