package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the complete system configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	Database  DatabaseConfig  `yaml:"database" json:"database"`
	Auth      AuthConfig      `yaml:"auth" json:"auth"`
	Images    ImageConfig     `yaml:"images" json:"images"`
	Scheduler SchedulerConfig `yaml:"scheduler" json:"scheduler"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
}

// ServerConfig for the HTTP API server
type ServerConfig struct {
	Host        string   `yaml:"host" json:"host"`
	Port        int      `yaml:"port" json:"port"`
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins"`
}

// DatabaseConfig for the relational store
type DatabaseConfig struct {
	Driver string `yaml:"driver" json:"driver"` // "sqlite" or "postgres"
	DSN    string `yaml:"dsn" json:"dsn"`
}

// AuthConfig for authentication
type AuthConfig struct {
	JWTSecret   string `yaml:"jwt_secret" json:"jwt_secret"`
	JWTIssuer   string `yaml:"jwt_issuer" json:"jwt_issuer"`
	TokenExpiry string `yaml:"token_expiry" json:"token_expiry"`
}

// ImageConfig for property image storage
type ImageConfig struct {
	Backend  string `yaml:"backend" json:"backend"` // "local" or "s3"
	BaseDir  string `yaml:"base_dir" json:"base_dir"`
	S3Bucket string `yaml:"s3_bucket" json:"s3_bucket"`
	S3Region string `yaml:"s3_region" json:"s3_region"`
	S3Prefix string `yaml:"s3_prefix" json:"s3_prefix"`
}

// SchedulerConfig for background jobs
type SchedulerConfig struct {
	OverdueCron string `yaml:"overdue_cron" json:"overdue_cron"`
}

// LoggingConfig for structured logging
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // json, console
}

// Load loads configuration from environment variables and an optional
// YAML config file pointed at by CONFIG_FILE. File values take
// precedence over environment defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:        getEnvString("SERVER_HOST", "0.0.0.0"),
			Port:        getEnvInt("SERVER_PORT", 8080),
			CORSOrigins: []string{getEnvString("CORS_ORIGIN", "http://localhost:3000")},
		},
		Database: DatabaseConfig{
			Driver: getEnvString("DB_DRIVER", "sqlite"),
			DSN:    getEnvString("DB_DSN", "property.db"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnvString("JWT_SECRET", ""),
			JWTIssuer:   getEnvString("JWT_ISSUER", "property-engine"),
			TokenExpiry: getEnvString("TOKEN_EXPIRY", "24h"),
		},
		Images: ImageConfig{
			Backend:  getEnvString("IMAGE_BACKEND", "local"),
			BaseDir:  getEnvString("IMAGE_BASE_DIR", "./data/images"),
			S3Bucket: getEnvString("IMAGE_S3_BUCKET", ""),
			S3Region: getEnvString("IMAGE_S3_REGION", "us-east-1"),
			S3Prefix: getEnvString("IMAGE_S3_PREFIX", "images"),
		},
		Scheduler: SchedulerConfig{
			OverdueCron: getEnvString("OVERDUE_CRON", "0 3 * * *"),
		},
		Logging: LoggingConfig{
			Level:  getEnvString("LOG_LEVEL", "info"),
			Format: getEnvString("LOG_FORMAT", "console"),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// String returns a pretty-printed JSON representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("invalid database driver: %s", c.Database.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.Images.Backend != "local" && c.Images.Backend != "s3" {
		return fmt.Errorf("invalid image backend: %s", c.Images.Backend)
	}

	if c.Images.Backend == "s3" && c.Images.S3Bucket == "" {
		return fmt.Errorf("IMAGE_S3_BUCKET is required for s3 backend")
	}

	return nil
}
