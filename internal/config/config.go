package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zephyrtronium/rpn"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	History HistoryConfig `mapstructure:"history"`
	Log     LogConfig     `mapstructure:"log"`

	// Source is the config file that was read, if any.
	Source string `mapstructure:"-"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Separator joins the values left on the stack.
	Separator string `mapstructure:"separator"`
	// Keypad lists the labels of the TUI's keypad buttons, in order.
	Keypad []string `mapstructure:"keypad"`
}

// HistoryConfig holds settings for the in-session history list.
type HistoryConfig struct {
	// Limit is the most committed entries kept. Zero means no limit.
	Limit int `mapstructure:"limit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	// File receives log output. Logs are discarded when it is empty, since
	// the TUI owns the terminal.
	File string `mapstructure:"file"`
}

// DefaultKeypad is the keypad used when none is configured.
var DefaultKeypad = []string{
	"+", "-", "×", "÷", "^", "√", "!", "%", "mod", "root", "abs",
	"=", "!=", "<", ">", "<=", ">=",
	"π", "τ", "φ", "e", "∞",
}

// EnvPrefix prefixes environment variable overrides, e.g. RPN_HISTORY_LIMIT.
const EnvPrefix = "RPN"

// DefaultPath returns the config file path used when neither a path nor
// RPN_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "rpn", "config.toml")
}

// Load reads configuration from file and env. An explicit path must exist;
// otherwise RPN_CONFIG or DefaultPath is read if present. Env var overrides
// use prefix RPN_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.separator", rpn.DefaultSep)
	v.SetDefault("ui.keypad", DefaultKeypad)
	v.SetDefault("history.limit", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Source = v.ConfigFileUsed()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that settings are usable.
func (c Config) Validate() error {
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	for _, k := range c.UI.Keypad {
		_, isOp := rpn.LookupOperator(k)
		_, isConst := rpn.LookupConstant(k)
		if !isOp && !isConst {
			return fmt.Errorf("ui.keypad: %q is not an operator or constant", k)
		}
	}
	return nil
}

// SlogLevel parses the configured level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}
