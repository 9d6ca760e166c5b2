package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/expravatar/pkg/domain"
	"github.com/umputun/expravatar/pkg/expression"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:expravatar.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Expressions ExpressionsConfig `yaml:"expressions" json:"expressions" jsonschema:"description=Expression catalog used until edited through the API"`

	Images ImagesConfig `yaml:"images" json:"images" jsonschema:"description=Expression image resolution"`

	Settings SettingsConfig `yaml:"settings" json:"settings" jsonschema:"description=Plugin settings persistence"`
}

// ExpressionsConfig holds the initial expression catalog
type ExpressionsConfig struct {
	DefaultCategory string                `yaml:"default_category" json:"default_category" jsonschema:"default=neutral,description=Expression used when nothing matches"`
	Categories      []expression.Category `yaml:"categories" json:"categories" jsonschema:"description=Ordered categories with keywords; built-in set if empty"`
}

// ImagesConfig defines how an expression maps to an image and how its presence is checked
type ImagesConfig struct {
	Template     string        `yaml:"template" json:"template" jsonschema:"default=extensions/expressions/assets/{expression}.{ext},description=Image path template with {character} {expression} and {ext} placeholders"`
	Ext          string        `yaml:"ext" json:"ext" jsonschema:"default=png,description=Image file extension"`
	ProbeURL     string        `yaml:"probe_url" json:"probe_url" jsonschema:"description=Host base URL used to check images exist with HEAD requests"`
	ProbeDir     string        `yaml:"probe_dir" json:"probe_dir" jsonschema:"description=Local directory used to check images exist"`
	ProbeTimeout time.Duration `yaml:"probe_timeout" json:"probe_timeout" jsonschema:"default=5s,description=Image check timeout"`
}

// SettingsConfig holds settings persistence options and defaults for a fresh database
type SettingsConfig struct {
	SaveDebounce time.Duration    `yaml:"save_debounce" json:"save_debounce" jsonschema:"default=1s,description=Delay before edited settings are written"`
	Defaults     *domain.Settings `yaml:"defaults" json:"defaults,omitempty" jsonschema:"description=Initial plugin settings"`
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

	cfg.SetDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// schema validation is supplementary, warn and go on
		log.Printf("[WARN] config doesn't match schema: %v", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields with default values
func (c *Config) SetDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:expravatar.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for expressions
	if c.Expressions.DefaultCategory == "" {
		c.Expressions.DefaultCategory = expression.DefaultCategory
	}
	c.Expressions.DefaultCategory = expression.NormalizeName(c.Expressions.DefaultCategory)

	// set defaults for images
	if c.Images.Template == "" {
		c.Images.Template = "extensions/expressions/assets/{expression}.{ext}"
	}
	if c.Images.Ext == "" {
		c.Images.Ext = "png"
	}
	c.Images.Ext = strings.TrimPrefix(c.Images.Ext, ".")
	if c.Images.ProbeTimeout == 0 {
		c.Images.ProbeTimeout = 5 * time.Second
	}

	// set defaults for settings
	if c.Settings.SaveDebounce == 0 {
		c.Settings.SaveDebounce = time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate expressions config
	catalog := expression.Catalog{Categories: cfg.Expressions.Categories}
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("expressions.categories: %w", err)
	}

	// validate images config
	if !strings.Contains(cfg.Images.Template, "{expression}") {
		return fmt.Errorf("images.template must contain {expression}")
	}
	if cfg.Images.ProbeURL != "" && cfg.Images.ProbeDir != "" {
		return fmt.Errorf("images.probe_url and images.probe_dir are mutually exclusive")
	}
	if cfg.Images.ProbeTimeout < 0 {
		return fmt.Errorf("images.probe_timeout must be non-negative")
	}

	// validate settings config
	if cfg.Settings.SaveDebounce < 0 {
		return fmt.Errorf("settings.save_debounce must be non-negative")
	}
	if d := cfg.Settings.Defaults; d != nil {
		if d.OriginalAvatarOpacity < 0 || d.OriginalAvatarOpacity > 1 {
			return fmt.Errorf("settings.defaults.original_avatar_opacity must be between 0 and 1")
		}
		if d.AvatarHeight != 0 && (d.AvatarHeight < domain.MinAvatarHeight || d.AvatarHeight > domain.MaxAvatarHeight) {
			return fmt.Errorf("settings.defaults.avatar_height must be between %d and %d", domain.MinAvatarHeight, domain.MaxAvatarHeight)
		}
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// InitialCatalog returns the configured catalog, or the built-in one if none configured
func (c *Config) InitialCatalog() *expression.Catalog {
	if len(c.Expressions.Categories) == 0 {
		return expression.DefaultCatalog()
	}
	res := &expression.Catalog{}
	for _, cat := range c.Expressions.Categories {
		// validated on load, duplicates can't happen here
		_ = res.AddCategory(cat)
	}
	return res
}

// InitialSettings returns the configured default plugin settings
func (c *Config) InitialSettings() domain.Settings {
	res := domain.DefaultSettings()
	if c.Settings.Defaults != nil {
		res = *c.Settings.Defaults
	}
	if res.DefaultExpression == "" {
		res.DefaultExpression = c.Expressions.DefaultCategory
	}
	return res.Normalize()
}
