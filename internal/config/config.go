// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hueforge/hueforge/internal/materialcolor"
)

// AccentColor is one entry of the fixed accent table included in every
// generated palette. Value is a hex string so the table can live in YAML;
// it is parsed and checked once at load time.
type AccentColor struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
	Blend bool   `yaml:"blend"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
	} `yaml:"app"`

	// Accents overrides the default accent table when set. The list is
	// read-only after Load returns; handlers must never mutate it.
	Accents []AccentColor `yaml:"accents"`
}

// DefaultAccents is the accent table served when no config file overrides
// it: seven named colors, most of them harmonized toward the requested
// source color.
func DefaultAccents() []AccentColor {
	return []AccentColor{
		{Name: "red", Value: "FF7676", Blend: true},
		{Name: "green", Value: "59EB5C", Blend: true},
		{Name: "blue", Value: "0000FF", Blend: true},
		{Name: "yellow", Value: "F8F770", Blend: false},
		{Name: "purple", Value: "BA64F2", Blend: true},
		{Name: "cyan", Value: "61D1FA", Blend: true},
		{Name: "orange", Value: "E69E50", Blend: false},
	}
}

// Load loads both .env and yaml configuration. configPath may be empty,
// in which case defaults plus environment variables apply.
func Load(configPath string) (*Config, error) {
	envPath := ".env"
	if configPath != "" {
		envPath = filepath.Join(filepath.Dir(configPath), ".env")
	}
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var cfg Config
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "hueforge"
	}
	if c.App.Environment == "" {
		c.App.Environment = getEnv("ENVIRONMENT", "development")
	}
	if c.App.Port == 0 {
		c.App.Port = getEnvAsInt("PORT", 8080)
	}
	if c.Accents == nil {
		c.Accents = DefaultAccents()
	}
}

func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app port %d out of range", c.App.Port)
	}
	for i, accent := range c.Accents {
		if accent.Name == "" {
			return fmt.Errorf("accent %d has no name", i)
		}
		if _, err := materialcolor.ParseARGB(accent.Value); err != nil {
			return fmt.Errorf("accent %q: %w", accent.Name, err)
		}
	}
	return nil
}

// CustomColors converts the accent table into the theme builder's input
// type. Validate has already proven every value parseable.
func (c *Config) CustomColors() []materialcolor.CustomColor {
	customs := make([]materialcolor.CustomColor, 0, len(c.Accents))
	for _, accent := range c.Accents {
		customs = append(customs, materialcolor.CustomColor{
			Name:  accent.Name,
			Value: materialcolor.MustParseARGB(accent.Value),
			Blend: accent.Blend,
		})
	}
	return customs
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
