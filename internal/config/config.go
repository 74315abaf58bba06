package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/working-date-go/internal/pkg/businesstime"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Holidays  HolidaysConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Telemetry TelemetryConfig
	CORS      CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name     string
	Version  string
	Port     int
	Env      string
	LogLevel string
}

type HolidaysConfig struct {
	URL             string
	TTL             time.Duration
	Timeout         time.Duration
	RefreshInterval time.Duration
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig is optional; an empty Addr disables the shared holiday cache.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	HolidaysKey string
}

type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string
	SampleRatio  float64
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FromEnv builds a Config from environment variables without validating it.
func FromEnv() (*Config, error) {
	config := &Config{}
	var err error

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Name:     getEnv("APP_NAME", "working-date"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Holiday source
	config.Holidays.URL = getEnv("HOLIDAYS_URL", "https://content.capta.co/Recruitment/WorkingDays.json")
	if config.Holidays.TTL, err = getEnvDuration("HOLIDAYS_TTL", time.Hour); err != nil {
		return nil, err
	}
	if config.Holidays.Timeout, err = getEnvDuration("HOLIDAYS_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if config.Holidays.RefreshInterval, err = getEnvDuration("HOLIDAYS_REFRESH_INTERVAL", 30*time.Minute); err != nil {
		return nil, err
	}

	// Database configuration
	dbEnabled, err := getEnvBool("DB_ENABLED", false)
	if err != nil {
		return nil, err
	}
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}

	config.Database = DatabaseConfig{
		Enabled:  dbEnabled,
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "working_date"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Redis configuration
	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	config.Redis = RedisConfig{
		Addr:        getEnv("REDIS_ADDR", ""),
		Password:    getEnv("REDIS_PASSWORD", ""),
		DB:          redisDB,
		HolidaysKey: getEnv("REDIS_HOLIDAYS_KEY", "working-date:holidays"),
	}

	// Telemetry
	otelEnabled, err := getEnvBool("OTEL_ENABLED", false)
	if err != nil {
		return nil, err
	}
	sampleRatio, err := strconv.ParseFloat(getEnv("OTEL_SAMPLING_RATIO", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OTEL_SAMPLING_RATIO: %w", err)
	}

	config.Telemetry = TelemetryConfig{
		Enabled:      otelEnabled,
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		SampleRatio:  sampleRatio,
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if _, err := c.Schedule(); err != nil {
		return fmt.Errorf("invalid working schedule: %w", err)
	}
	if strings.TrimSpace(c.Holidays.URL) == "" {
		return fmt.Errorf("HOLIDAYS_URL is required")
	}
	if c.Holidays.TTL <= 0 {
		return fmt.Errorf("HOLIDAYS_TTL must be positive")
	}
	if c.Holidays.Timeout <= 0 {
		return fmt.Errorf("HOLIDAYS_TIMEOUT must be positive")
	}
	if c.Holidays.RefreshInterval < 0 {
		return fmt.Errorf("HOLIDAYS_REFRESH_INTERVAL must not be negative")
	}
	if c.Database.Enabled && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when DB_ENABLED is true")
	}
	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("OTEL_SAMPLING_RATIO must be between 0 and 1")
	}
	return nil
}

// Schedule builds the fixed working schedule. It fails only when the zone
// database is unavailable.
func (c *Config) Schedule() (*businesstime.Schedule, error) {
	return businesstime.NewSchedule(businesstime.StandardConfig())
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	b, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
