package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	ini "github.com/go-ini/ini"

	"hancombiner/internal/combiner"
	"hancombiner/internal/logger"
)

const (
	ModeLine        = "line"
	ModeInteractive = "interactive"

	FormatPretty = "pretty"
	FormatJSON   = "json"
)

type Config struct {
	Combiner CombinerConfig `toml:"combiner"`
	Log      LogConfig      `toml:"log"`
	Input    InputConfig    `toml:"input"`
}

type CombinerConfig struct {
	Policy string `toml:"policy"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type InputConfig struct {
	Mode         string `toml:"mode"`
	ShowSyllable bool   `toml:"show_syllable"`
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func Default() Config {
	return Config{
		Combiner: CombinerConfig{Policy: combiner.KeepComposingWord.String()},
		Log:      LogConfig{Level: "info", Format: FormatPretty},
		Input:    InputConfig{Mode: ModeLine},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
// Files ending in .toml are decoded as TOML, anything else as INI.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, ConfigError{msg: fmt.Sprintf("config: %s is a directory", path)}
	}

	path = filepath.Clean(path)
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: decode toml: %w", err)
		}
	} else if err := loadINI(path, &cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadINI(path string, cfg *Config) error {
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	comb := file.Section("combiner")
	cfg.Combiner.Policy = comb.Key("policy").MustString(cfg.Combiner.Policy)

	log := file.Section("log")
	cfg.Log.Level = log.Key("level").MustString(cfg.Log.Level)
	cfg.Log.Format = log.Key("format").MustString(cfg.Log.Format)

	input := file.Section("input")
	cfg.Input.Mode = input.Key("mode").MustString(cfg.Input.Mode)
	cfg.Input.ShowSyllable = input.Key("show_syllable").MustBool(cfg.Input.ShowSyllable)
	return nil
}

func (c Config) Validate() error {
	if _, err := combiner.ParsePolicy(c.Combiner.Policy); err != nil {
		return ConfigError{msg: err.Error()}
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return ConfigError{msg: fmt.Sprintf("invalid log level %q", c.Log.Level)}
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatPretty, FormatJSON:
	default:
		return ConfigError{msg: fmt.Sprintf("invalid log format %q (want pretty or json)", c.Log.Format)}
	}
	switch strings.ToLower(c.Input.Mode) {
	case ModeLine, ModeInteractive:
	default:
		return ConfigError{msg: fmt.Sprintf("invalid input mode %q (want line or interactive)", c.Input.Mode)}
	}
	return nil
}

// Policy parses the configured composing word policy. Invalid names fall
// back to keeping the word; Validate reports them.
func (c Config) Policy() combiner.ComposingWordPolicy {
	p, _ := combiner.ParsePolicy(c.Combiner.Policy)
	return p
}
