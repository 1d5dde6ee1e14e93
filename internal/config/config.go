package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"ledger-analytics/internal/models"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Migrations MigrationsConfig
	Analytics  AnalyticsConfig
	Narrative  NarrativeConfig
	Auth       AuthConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type MigrationsConfig struct {
	AutoMigrate    bool
	Seed           bool
	MigrationsPath string
	SeedsPath      string
}

// AnalyticsConfig tunes the aggregation store and the forecasting services.
type AnalyticsConfig struct {
	RefreshSchedule      string
	RefreshOnStartup     bool
	RefreshTimeout       time.Duration
	DefaultCurrency      string
	LookbackMonths       int
	DefaultHorizon       int
	MaxHorizon           int
	CorrelationThreshold float64
	GoalWeights          map[models.ModelKind]float64
	PersistSnapshots     bool
}

type NarrativeConfig struct {
	Enabled          bool
	APIKey           string
	Model            string
	Timeout          time.Duration
	FailureThreshold int
	ResetTimeout     time.Duration
}

// AuthConfig verifies bearer tokens issued elsewhere. A nil PublicKey disables verification.
type AuthConfig struct {
	PublicKey *rsa.PublicKey
	Issuer    string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	ExpiresIn         time.Duration
}

const DefaultGoalWeights = "linear=1,exponential=1,seasonal=1"

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Migrations: MigrationsConfig{
			AutoMigrate:    getBoolEnv("AUTO_MIGRATE", true),
			Seed:           getBoolEnv("SEED_DATABASE", false),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:      getEnv("SEEDS_PATH", "db/seeds"),
		},
		Analytics: AnalyticsConfig{
			RefreshSchedule:      getEnv("ANALYTICS_REFRESH_SCHEDULE", "@hourly"),
			RefreshOnStartup:     getBoolEnv("ANALYTICS_REFRESH_ON_STARTUP", true),
			RefreshTimeout:       getDurationEnv("ANALYTICS_REFRESH_TIMEOUT", 2*time.Minute),
			DefaultCurrency:      strings.ToUpper(getEnv("ANALYTICS_DEFAULT_CURRENCY", "USD")),
			LookbackMonths:       getIntEnv("ANALYTICS_LOOKBACK_MONTHS", 24),
			DefaultHorizon:       getIntEnv("ANALYTICS_DEFAULT_HORIZON", 6),
			MaxHorizon:           getIntEnv("ANALYTICS_MAX_HORIZON", 36),
			CorrelationThreshold: getFloatEnv("ANALYTICS_CORRELATION_THRESHOLD", 0.7),
			PersistSnapshots:     getBoolEnv("ANALYTICS_PERSIST_SNAPSHOTS", true),
		},
		Narrative: NarrativeConfig{
			Enabled:          getBoolEnv("NARRATIVE_ENABLED", false),
			APIKey:           getEnv("GEMINI_API_KEY", ""),
			Model:            getEnv("NARRATIVE_MODEL", "gemini-2.5-flash"),
			Timeout:          getDurationEnv("NARRATIVE_TIMEOUT", 20*time.Second),
			FailureThreshold: getIntEnv("NARRATIVE_FAILURE_THRESHOLD", 3),
			ResetTimeout:     getDurationEnv("NARRATIVE_RESET_TIMEOUT", time.Minute),
		},
		Auth: AuthConfig{
			Issuer: getEnv("JWT_ISSUER", ""),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getFloatEnv("RATE_LIMIT_PER_SECOND", 10),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 20),
			ExpiresIn:         getDurationEnv("RATE_LIMIT_EXPIRES_IN", 3*time.Minute),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	weights, err := ParseGoalWeights(getEnv("ANALYTICS_GOAL_WEIGHTS", DefaultGoalWeights))
	if err != nil {
		return nil, err
	}
	config.Analytics.GoalWeights = weights

	if keyB64 := os.Getenv("JWT_PUBLIC_KEY"); keyB64 != "" {
		publicKey, err := loadPublicKeyFromEnv(keyB64)
		if err != nil {
			return nil, err
		}
		config.Auth.PublicKey = publicKey
	} else if config.IsProduction() {
		slog.Warn("JWT_PUBLIC_KEY not set in production, bearer token verification is disabled")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks values whose defaults could have been overridden with nonsense.
func (c *Config) Validate() error {
	if _, err := cron.ParseStandard(c.Analytics.RefreshSchedule); err != nil {
		return fmt.Errorf("invalid ANALYTICS_REFRESH_SCHEDULE %q: %w", c.Analytics.RefreshSchedule, err)
	}
	if !models.IsValidCurrencyCode(c.Analytics.DefaultCurrency) {
		return fmt.Errorf("invalid ANALYTICS_DEFAULT_CURRENCY %q", c.Analytics.DefaultCurrency)
	}
	if c.Analytics.DefaultHorizon <= 0 || c.Analytics.MaxHorizon < c.Analytics.DefaultHorizon {
		return fmt.Errorf("forecast horizon must satisfy 0 < default (%d) <= max (%d)",
			c.Analytics.DefaultHorizon, c.Analytics.MaxHorizon)
	}
	if c.Analytics.CorrelationThreshold < 0 || c.Analytics.CorrelationThreshold > 1 {
		return fmt.Errorf("ANALYTICS_CORRELATION_THRESHOLD must be within [0,1], got %v", c.Analytics.CorrelationThreshold)
	}
	if len(c.Analytics.GoalWeights) == 0 {
		return errors.New("at least one goal model weight is required")
	}
	if c.Narrative.Enabled && c.Narrative.APIKey == "" {
		return errors.New("GEMINI_API_KEY is required when NARRATIVE_ENABLED is true")
	}
	return nil
}

// ParseGoalWeights reads "linear=1,exponential=0.5" into a weight table.
// Weights must be non-negative and at least one must be positive.
func ParseGoalWeights(raw string) (map[models.ModelKind]float64, error) {
	weights := make(map[models.ModelKind]float64)
	var total float64

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid goal weight %q: expected kind=weight", part)
		}

		kind := models.ModelKind(strings.TrimSpace(name))
		if !kind.IsValid() || kind == models.ModelCategory {
			return nil, fmt.Errorf("invalid goal weight model %q", name)
		}

		w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("invalid goal weight value %q for %s", value, kind)
		}
		weights[kind] = w
		total += w
	}

	if total <= 0 {
		return nil, errors.New("goal weights must contain at least one positive weight")
	}
	return weights, nil
}

// WeightedKinds lists the model kinds with a positive weight in a stable order.
func (c AnalyticsConfig) WeightedKinds() []models.ModelKind {
	kinds := make([]models.ModelKind, 0, len(c.GoalWeights))
	for k, w := range c.GoalWeights {
		if w > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL is the postgres connection string used by the migration runner.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

func loadPublicKeyFromEnv(publicKeyB64 string) (*rsa.PublicKey, error) {
	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	publicKey, err := LoadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return publicKey, nil
}

// LoadRSAPublicKey loads an RSA public key from PEM format
func LoadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
