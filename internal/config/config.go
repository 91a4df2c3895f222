package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config full service configuration loaded from config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Agenda   AgendaConfig   `toml:"agenda"`
}

// ServerConfig HTTP server settings (seconds for all timeouts)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig postgres connection settings
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
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig logger destination and level
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig prometheus exposure settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AgendaConfig business rules for the slot engine. Read per request, never
// mutated by the engine.
type AgendaConfig struct {
	Timezone         string `toml:"timezone"`
	OpenHour         int    `toml:"open_hour"`  // informational; real bounds come from the weekly schedule
	CloseHour        int    `toml:"close_hour"` // informational
	SlotSizeMin      int    `toml:"slot_size_min"`
	BufferBetweenMin int    `toml:"buffer_between_min"`
	MinAdvanceMin    int    `toml:"min_advance_min"`
	MaxAdvanceDays   int    `toml:"max_advance_days"`
}

// Location resolves the configured timezone.
func (a AgendaConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid agenda timezone %q: %w", a.Timezone, err)
	}
	return loc, nil
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "barberia-backend"
	}
	if cfg.Agenda.Timezone == "" {
		cfg.Agenda.Timezone = "America/Mexico_City"
	}
	if cfg.Agenda.OpenHour == 0 {
		cfg.Agenda.OpenHour = 9
	}
	if cfg.Agenda.CloseHour == 0 {
		cfg.Agenda.CloseHour = 19
	}
	if cfg.Agenda.SlotSizeMin == 0 {
		cfg.Agenda.SlotSizeMin = 15
	}
	if cfg.Agenda.MaxAdvanceDays == 0 {
		cfg.Agenda.MaxAdvanceDays = 30
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if _, err := cfg.Agenda.Location(); err != nil {
		return err
	}
	if cfg.Agenda.SlotSizeMin <= 0 {
		return fmt.Errorf("config: agenda.slot_size_min must be positive")
	}
	if cfg.Agenda.BufferBetweenMin < 0 {
		return fmt.Errorf("config: agenda.buffer_between_min must not be negative")
	}
	if cfg.Agenda.MinAdvanceMin < 0 {
		return fmt.Errorf("config: agenda.min_advance_min must not be negative")
	}
	if cfg.Agenda.MaxAdvanceDays <= 0 {
		return fmt.Errorf("config: agenda.max_advance_days must be positive")
	}
	return nil
}
