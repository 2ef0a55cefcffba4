package confs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds the runtime settings of the diet server.
type Config struct {
	Env      string
	Port     string
	LogLevel string

	StorageBackend string
	DBURL          string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	SQLitePath     string

	SessionCookieName string
	SessionMaxAge     time.Duration

	CORSOrigins []string
}

// LoadConfig loads environment variables from a .env file if present
// and builds a validated Config from them.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	maxAge, err := time.ParseDuration(getEnv("SESSION_MAX_AGE", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE: %w", err)
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "3333"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		StorageBackend:    getEnv("STORAGE_BACKEND", BackendPostgres),
		DBURL:             os.Getenv("DB_URL"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		SQLitePath:        getEnv("SQLITE_PATH", "diet.db"),
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "sessionId"),
		SessionMaxAge:     maxAge,
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "*")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	switch c.StorageBackend {
	case BackendPostgres:
		if c.DBURL == "" && (c.DBHost == "" || c.DBPort == "" || c.DBUser == "" || c.DBPassword == "" || c.DBName == "") {
			return errors.New("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when STORAGE_BACKEND=sqlite")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.SessionCookieName == "" {
		return errors.New("SESSION_COOKIE_NAME must not be empty")
	}
	if c.SessionMaxAge <= 0 {
		return errors.New("SESSION_MAX_AGE must be positive")
	}
	return nil
}

// PostgresDSN builds the connection string for the postgres backend.
func (c *Config) PostgresDSN() string {
	if c.DBURL != "" {
		dsn := c.DBURL
		// hosted databases require SSL unless the URL says otherwise
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		return dsn
	}

	sslMode := "require"
	if c.DBHost == "localhost" || c.DBHost == "127.0.0.1" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, sslMode)
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
