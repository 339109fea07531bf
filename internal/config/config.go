// Package config loads the board's settings: built-in defaults, then an
// optional YAML file, then NOTETAB_* environment variables (optionally read
// from a .env file), then validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "NOTETAB_"

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Environment string `yaml:"environment" validate:"oneof=development production"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// Language overrides the stored preference for this run only.
	Language  string       `yaml:"language" validate:"omitempty,oneof=en fa"`
	PrefsPath string       `yaml:"prefs_path" validate:"required"`
	Window    WindowConfig `yaml:"window"`
	Fonts     FontConfig   `yaml:"fonts"`
	Editor    EditorConfig `yaml:"editor"`
}

type WindowConfig struct {
	Title  string `yaml:"title" validate:"required"`
	Width  int    `yaml:"width" validate:"min=400"`
	Height int    `yaml:"height" validate:"min=400"`
}

type FontConfig struct {
	Size float64 `yaml:"size" validate:"gt=0,lte=48"`
	// PersianPath replaces the bundled Noto Sans Arabic for RTL runs.
	PersianPath string `yaml:"persian_path" validate:"omitempty,file"`
}

type EditorConfig struct {
	MinRows   int `yaml:"min_rows" validate:"min=1"`
	MaxRows   int `yaml:"max_rows" validate:"gtefield=MinRows"`
	MaxLength int `yaml:"max_length" validate:"min=1,max=10000"`
}

// LoadOptions says where to look. Empty paths are skipped, except that a
// .env in the working directory is read when EnvFile is empty.
type LoadOptions struct {
	Path    string
	EnvFile string
}

func Default() *Config {
	return &Config{
		Environment: "production",
		LogLevel:    "info",
		PrefsPath:   defaultPrefsPath(),
		Window: WindowConfig{
			Title:  "notetab",
			Width:  1280,
			Height: 800,
		},
		Fonts:  FontConfig{Size: 16},
		Editor: EditorConfig{MinRows: 1, MaxRows: 5, MaxLength: 150},
	}
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".notetab", "prefs.yaml")
	}
	return filepath.Join(dir, "notetab", "prefs.yaml")
}

func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.Path != "" {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.Path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", opts.Path, err)
		}
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile never overrides variables already set in the process.
func loadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Language = getEnv("LANGUAGE", c.Language)
	c.PrefsPath = getEnv("PREFS_PATH", c.PrefsPath)
	c.Window.Title = getEnv("WINDOW_TITLE", c.Window.Title)
	c.Fonts.PersianPath = getEnv("PERSIAN_FONT", c.Fonts.PersianPath)

	var err error
	if c.Window.Width, err = getEnvInt("WINDOW_WIDTH", c.Window.Width); err != nil {
		return err
	}
	if c.Window.Height, err = getEnvInt("WINDOW_HEIGHT", c.Window.Height); err != nil {
		return err
	}
	if c.Editor.MaxLength, err = getEnvInt("MAX_LENGTH", c.Editor.MaxLength); err != nil {
		return err
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalid, envPrefix, key, value)
	}
	return n, nil
}
