package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Usage      UsageConfig
	Projection ProjectionConfig
	Logger     LoggerConfig
	Metrics    MetricsConfig
}

type ServerConfig struct {
	Host     string
	Port     int
	BasePath string
}

type DatabaseConfig struct {
	Path string
}

type UsageConfig struct {
	FilePath       string
	BackupInterval time.Duration
}

// ProjectionConfig locates the CartographicProjection service.
type ProjectionConfig struct {
	HostURL  string
	BasePath string
	Timeout  time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads the configuration from the environment. Variables from envFile are
// loaded first when the file exists; variables already set in the process win.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_BASE_PATH", "/Field/api")
	v.SetDefault("DATABASE_PATH", "../home/Field.db")
	v.SetDefault("USAGE_FILE_PATH", "../home/history.json")
	v.SetDefault("USAGE_BACKUP_INTERVAL", "5m")
	v.SetDefault("PROJECTION_HOST_URL", "http://localhost:8081/")
	v.SetDefault("PROJECTION_BASE_PATH", "CartographicProjection/api/")
	v.SetDefault("PROJECTION_TIMEOUT", "30s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("METRICS_ENABLED", true)

	// Env
	v.AutomaticEnv()

	backupInterval, err := time.ParseDuration(v.GetString("USAGE_BACKUP_INTERVAL"))
	if err != nil || backupInterval <= 0 {
		backupInterval = 5 * time.Minute
	}

	timeout, err := time.ParseDuration(v.GetString("PROJECTION_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:     v.GetString("SERVER_HOST"),
			Port:     v.GetInt("SERVER_PORT"),
			BasePath: v.GetString("SERVER_BASE_PATH"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("DATABASE_PATH"),
		},
		Usage: UsageConfig{
			FilePath:       v.GetString("USAGE_FILE_PATH"),
			BackupInterval: backupInterval,
		},
		Projection: ProjectionConfig{
			HostURL:  v.GetString("PROJECTION_HOST_URL"),
			BasePath: v.GetString("PROJECTION_BASE_PATH"),
			Timeout:  timeout,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT %d", cfg.Server.Port)
	}

	return cfg, nil
}
