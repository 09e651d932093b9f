package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Store         StoreConfig
	Notification  NotificationConfig
	Countdown     CountdownConfig
	Observability ObservabilityConfig
	Log           LogConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// AllowedOrigins is empty when any origin may call the API.
	AllowedOrigins []string
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

// StoreConfig selects where change notifications travel. An empty NATSURL
// keeps them in process.
type StoreConfig struct {
	Namespace string
	NATSURL   string
}

type NotificationConfig struct {
	Permission string
	Body       string
	Sound      string
}

type CountdownConfig struct {
	TickInterval time.Duration
}

type ObservabilityConfig struct {
	ServiceName      string
	ServiceVersion   string
	Environment      string
	TraceSampleRatio float64
}

// LoadDotEnv reads variables from the given files, or .env when none are
// given. Missing files are ignored and variables already set win.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return fmt.Errorf("load %s: %w", name, err)
		}
	}

	return nil
}

func Load() (*Config, error) {
	serverPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	// SSE streams stay open, so the write timeout is off unless set.
	writeTimeout, err := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	maxOpenConns, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	slowThreshold, err := time.ParseDuration(getEnv("DB_SLOW_THRESHOLD", "200ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_SLOW_THRESHOLD: %w", err)
	}

	tickInterval, err := time.ParseDuration(getEnv("COUNTDOWN_TICK", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid COUNTDOWN_TICK: %w", err)
	}

	if tickInterval <= 0 {
		return nil, fmt.Errorf("invalid COUNTDOWN_TICK: must be positive")
	}

	sampleRatio, err := strconv.ParseFloat(getEnv("TRACE_SAMPLE_RATIO", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TRACE_SAMPLE_RATIO: %w", err)
	}

	permission := getEnv("NOTIFICATION_PERMISSION", "undetermined")
	switch permission {
	case "granted", "denied", "undetermined":
	default:
		return nil, fmt.Errorf("invalid NOTIFICATION_PERMISSION: %q", permission)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_DSN environment variable is required")
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,

			AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			DSN:             dsn,
			MaxOpenConns:    maxOpenConns,
			MaxIdleConns:    maxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
			SlowThreshold:   slowThreshold,
		},
		Store: StoreConfig{
			Namespace: getEnv("STORE_NAMESPACE", "timer"),
			NATSURL:   os.Getenv("NATS_URL"),
		},
		Notification: NotificationConfig{
			Permission: permission,
			Body:       getEnv("NOTIFICATION_BODY", "The pill has dropped"),
			Sound:      getEnv("NOTIFICATION_SOUND", "default"),
		},
		Countdown: CountdownConfig{
			TickInterval: tickInterval,
		},
		Observability: ObservabilityConfig{
			ServiceName:      getEnv("SERVICE_NAME", "primind-pill-timer"),
			ServiceVersion:   getEnv("SERVICE_VERSION", "dev"),
			Environment:      getEnv("ENVIRONMENT", "local"),
			TraceSampleRatio: sampleRatio,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func splitList(value string) []string {
	var items []string

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
