// Package config provides configuration management for the Gridiron Edge
// predictor.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Data       DataConfig       `mapstructure:"data"`
	Prediction PredictionConfig `mapstructure:"prediction" validate:"required"`
	Backtest   BacktestConfig   `mapstructure:"backtest" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration. Only
// consulted when Enabled is set; file-backed sources need no database.
type DatabaseConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// DataConfig points the file-backed repositories at their snapshot
// directories. Used when the database is disabled.
type DataConfig struct {
	StandingsDir string `mapstructure:"standings_dir"`
	ScheduleDir  string `mapstructure:"schedule_dir"`
	LinesDir     string `mapstructure:"lines_dir"`
}

// PredictionConfig represents predictor configuration
type PredictionConfig struct {
	Preset               string `mapstructure:"preset" validate:"required"`
	StrictPreset         bool   `mapstructure:"strict_preset"`
	SnapshotCacheSeconds int    `mapstructure:"snapshot_cache_seconds" validate:"gte=0"`
}

// BacktestConfig represents backtesting configuration
type BacktestConfig struct {
	Season       int    `mapstructure:"season" validate:"required,gt=0"`
	StartWeek    int    `mapstructure:"start_week" validate:"required,gte=1"`
	EndWeek      int    `mapstructure:"end_week" validate:"required,gte=1"`
	Preset       string `mapstructure:"preset" validate:"required"`
	StrictPreset bool   `mapstructure:"strict_preset"`
	Workers      int    `mapstructure:"workers" validate:"omitempty,gt=0"`
	OutputPath   string `mapstructure:"output_path" validate:"required"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
