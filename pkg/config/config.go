package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database      DatabaseConfig      `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Render        RenderConfig        `yaml:"render" json:"render" jsonschema:"description=QR image rendering"`
	Notifications NotificationsConfig `yaml:"notifications" json:"notifications" jsonschema:"description=Transient notifications"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds storage settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:quickqr.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// RenderConfig holds QR image settings. Inverted images swap the colors.
type RenderConfig struct {
	Size       int    `yaml:"size" json:"size" jsonschema:"default=1024,minimum=21,maximum=4096,description=Image size in pixels"`
	Foreground string `yaml:"foreground" json:"foreground" jsonschema:"default=#000000,pattern=^#?[0-9a-fA-F]{6}$,description=Module color"`
	Background string `yaml:"background" json:"background" jsonschema:"default=#FFFFFF,pattern=^#?[0-9a-fA-F]{6}$,description=Background color"`
}

// NotificationsConfig holds transient notification settings
type NotificationsConfig struct {
	TTL time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=3s,description=How long a notification is kept"`
}

var colorRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// New makes configuration with all defaults set
func New() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:quickqr.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Render.Size == 0 {
		cfg.Render.Size = 1024
	}
	if cfg.Render.Foreground == "" {
		cfg.Render.Foreground = "#000000"
	}
	if cfg.Render.Background == "" {
		cfg.Render.Background = "#FFFFFF"
	}

	if cfg.Notifications.TTL == 0 {
		cfg.Notifications.TTL = 3 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return errors.New("server timeout must be at least 1 second")
	}
	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MaxIdleConns < 0 {
		return errors.New("database connection limits must be non-negative")
	}
	if cfg.Render.Size < 21 || cfg.Render.Size > 4096 {
		return errors.New("render size must be between 21 and 4096")
	}
	if !colorRe.MatchString(cfg.Render.Foreground) {
		return fmt.Errorf("render foreground %q is not a #RRGGBB color", cfg.Render.Foreground)
	}
	if !colorRe.MatchString(cfg.Render.Background) {
		return fmt.Errorf("render background %q is not a #RRGGBB color", cfg.Render.Background)
	}
	if cfg.Notifications.TTL < 100*time.Millisecond {
		return errors.New("notifications ttl must be at least 100ms")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// ConnMaxLifetime returns database connection lifetime as duration
func (c *Config) ConnMaxLifetime() time.Duration {
	return time.Duration(c.Database.ConnMaxLifetime) * time.Second
}
