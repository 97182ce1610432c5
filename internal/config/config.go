package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/store"
)

// EnvPrefix prefixes every environment override, e.g. SABDAM_LOG_LEVEL.
const EnvPrefix = "SABDAM"

// Config holds all configuration for the application.
type Config struct {
	DB       string         `mapstructure:"db"`
	Practice PracticeConfig `mapstructure:"practice"`
	Log      LogConfig      `mapstructure:"log"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

// PracticeConfig holds session defaults.
type PracticeConfig struct {
	QuestionCount int    `mapstructure:"question_count"`
	Script        string `mapstructure:"script"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// LLMConfig selects the optional tip provider. An empty Provider means
// discover one from the standard API key variables.
type LLMConfig struct {
	Provider string        `mapstructure:"provider"`
	Model    string        `mapstructure:"model"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from an optional YAML file and SABDAM_*
// environment variables. With an empty path the default location is
// tried and silently skipped when absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.DB == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DB = p
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(filepath.Dir(cfg.DB), "sabdam.log")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")

	v.SetDefault("practice.question_count", 5)
	v.SetDefault("practice.script", string(lexicon.ScriptTransliterated))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", 30*time.Second)
}

// Validate rejects values no command could work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Practice.QuestionCount <= 0 {
		errs = append(errs, fmt.Errorf("practice.question_count must be positive, got %d", c.Practice.QuestionCount))
	}
	if _, ok := lexicon.ParseScript(c.Practice.Script); !ok {
		errs = append(errs, fmt.Errorf("practice.script: unknown script %q", c.Practice.Script))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.LLM.Timeout < 0 {
		errs = append(errs, fmt.Errorf("llm.timeout must not be negative"))
	}
	return errors.Join(errs...)
}

// Script returns the configured default display script.
func (c *Config) Script() lexicon.Script {
	s, _ := lexicon.ParseScript(c.Practice.Script)
	return s
}

// DefaultDir returns $XDG_CONFIG_HOME/sabdam, falling back to
// ~/.config/sabdam.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "sabdam"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "sabdam"), nil
}
