package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/chip-dealer/internal/inventory"
	"github.com/eugenenazirov/chip-dealer/internal/money"
)

const (
	defaultPeople        = 10
	defaultBuyIn         = "$10.00"
	defaultLocale        = "en-CA"
	defaultSymbol        = "$"
	defaultSearchTimeout = 30 * time.Second
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Chips         []string
	People        int
	BuyIn         money.Amount
	Locale         language.Tag
	CurrencySymbol string
	SearchTimeout  time.Duration
	LogLevel       zapcore.Level
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Chips         []string `yaml:"chips"`
	People        *int     `yaml:"people"`
	BuyIn         string   `yaml:"buy_in"`
	Locale         string   `yaml:"locale"`
	CurrencySymbol string   `yaml:"currency_symbol"`
	SearchTimeout  string   `yaml:"search_timeout"`
	Log            yamlLog  `yaml:"log"`
}

// yamlLog represents the log section in YAML.
type yamlLog struct {
	Level string `yaml:"level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	EnvFile        string
	Chips          *string
	People         *int
	BuyIn          *string
	Locale         *string
	CurrencySymbol *string
	SearchTimeout  *time.Duration
	LogLevel       *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return Config{}, err
	}

	// Seed the environment from a .env file; variables already set win
	if overrides != nil && overrides.EnvFile != "" {
		if err := godotenv.Load(overrides.EnvFile); err != nil {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("apply environment: %w", err)
	}

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, fmt.Errorf("apply YAML config: %w", err)
		}
	}

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() (Config, error) {
	buyIn, err := money.Parse(defaultBuyIn)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Chips:          inventory.DefaultSpecs(),
		People:         defaultPeople,
		BuyIn:          buyIn,
		Locale:         language.MustParse(defaultLocale),
		CurrencySymbol: defaultSymbol,
		SearchTimeout:  defaultSearchTimeout,
		LogLevel:       zapcore.InfoLevel,
	}, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if len(yamlCfg.Chips) > 0 {
		cfg.Chips = yamlCfg.Chips
	}

	if yamlCfg.People != nil {
		cfg.People = *yamlCfg.People
	}

	if symbol := strings.TrimSpace(yamlCfg.CurrencySymbol); symbol != "" {
		cfg.CurrencySymbol = symbol
	}

	return applyStrings(cfg, yamlCfg.BuyIn, yamlCfg.Locale, yamlCfg.SearchTimeout, yamlCfg.Log.Level)
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	if chips := strings.TrimSpace(os.Getenv("CHIPS")); chips != "" {
		cfg.Chips = inventory.SplitList(chips)
	}

	if people := strings.TrimSpace(os.Getenv("PEOPLE")); people != "" {
		value, err := strconv.Atoi(people)
		if err != nil {
			return fmt.Errorf("PEOPLE: invalid integer %q", people)
		}
		cfg.People = value
	}

	if symbol := strings.TrimSpace(os.Getenv("CURRENCY_SYMBOL")); symbol != "" {
		cfg.CurrencySymbol = symbol
	}

	return applyStrings(cfg,
		strings.TrimSpace(os.Getenv("BUY_IN")),
		strings.TrimSpace(os.Getenv("LOCALE")),
		strings.TrimSpace(os.Getenv("SEARCH_TIMEOUT")),
		strings.TrimSpace(os.Getenv("LOG_LEVEL")),
	)
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.Chips != nil && *overrides.Chips != "" {
		cfg.Chips = inventory.SplitList(*overrides.Chips)
	}

	if overrides.People != nil {
		cfg.People = *overrides.People
	}

	if symbol := deref(overrides.CurrencySymbol); symbol != "" {
		cfg.CurrencySymbol = symbol
	}

	if overrides.SearchTimeout != nil {
		cfg.SearchTimeout = *overrides.SearchTimeout
	}

	return applyStrings(cfg,
		deref(overrides.BuyIn),
		deref(overrides.Locale),
		"",
		deref(overrides.LogLevel),
	)
}

// applyStrings parses the textual settings shared by every source. Empty
// values leave the current setting untouched.
func applyStrings(cfg *Config, buyIn, locale, searchTimeout, logLevel string) error {
	if buyIn != "" {
		amount, err := money.Parse(buyIn)
		if err != nil {
			return fmt.Errorf("parse buy-in: %w", err)
		}
		cfg.BuyIn = amount
	}

	if locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale %q: %w", locale, err)
		}
		cfg.Locale = tag
	}

	if searchTimeout != "" {
		d, err := time.ParseDuration(searchTimeout)
		if err != nil {
			return fmt.Errorf("parse search timeout: %w", err)
		}
		cfg.SearchTimeout = d
	}

	if logLevel != "" {
		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		cfg.LogLevel = level
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.People < 0 {
		return errors.New("people must be >= 0")
	}
	if cfg.SearchTimeout < 0 {
		return errors.New("search timeout must be >= 0")
	}
	if _, err := inventory.Parse(cfg.Chips); err != nil {
		return fmt.Errorf("parse chips: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
