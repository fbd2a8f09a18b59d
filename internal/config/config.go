// Package config loads service configuration from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/glamtime/SalonBookingService/internal/domain"
	"github.com/glamtime/SalonBookingService/pkg/types"
)

// Config is the root configuration of the service.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig holds logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig holds the salon working-day window.
// Empty fields fall back to the domain defaults.
type ScheduleConfig struct {
	OpenTime   string `toml:"open_time"`
	CloseTime  string `toml:"close_time"`
	BreakStart string `toml:"break_start"`
	BreakEnd   string `toml:"break_end"`
}

// BusinessHours converts the schedule section into domain business hours,
// applying defaults for unset fields.
func (c ScheduleConfig) BusinessHours() (domain.BusinessHours, error) {
	hours := domain.DefaultBusinessHours()

	if c.OpenTime != "" {
		hours.OpenTime = types.TimeString(c.OpenTime)
	}
	if c.CloseTime != "" {
		hours.CloseTime = types.TimeString(c.CloseTime)
	}
	if c.BreakStart != "" {
		hours.BreakStart = types.TimeString(c.BreakStart)
	}
	if c.BreakEnd != "" {
		hours.BreakEnd = types.TimeString(c.BreakEnd)
	}

	if err := hours.Validate(); err != nil {
		return domain.BusinessHours{}, fmt.Errorf("config: invalid schedule section: %w", err)
	}
	return hours, nil
}

// Load reads and decodes the configuration file.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-booking-service",
		},
	}
}
