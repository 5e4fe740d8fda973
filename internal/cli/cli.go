package cli

import (
	"errors"
	"fmt"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"hancombiner/internal/config"
)

const (
	programName = "hancombiner"
	envPrefix   = "HANCOMBINER"
)

type Options struct {
	ShowHelp     bool
	ConfigPath   string
	Mode         string
	LogLevel     string
	LogFormat    string
	Policy       string
	ShowSyllable bool
	Usage        string
}

// Parse reads args (including the program name, as in os.Args). Every flag
// can also be set through a HANCOMBINER_* environment variable.
func Parse(args []string) (Options, error) {
	fs := ff.NewFlagSet(programName)
	var (
		configPath   = fs.StringLong("config", "", "path to an .ini or .toml config file")
		mode         = fs.StringLong("mode", "", "input mode: line or interactive")
		logLevel     = fs.StringLong("log-level", "", "log level: debug, info, warn, error")
		logFormat    = fs.StringLong("log-format", "", "log format: pretty or json")
		policy       = fs.StringLong("composing-policy", "", "what a reset does to the composing word: keep or clear")
		showSyllable = fs.BoolLong("show-syllable", "print live syllable commits, not only segment ends")
	)

	opts := Options{Usage: ffhelp.Flags(fs).String()}
	if len(args) > 0 {
		args = args[1:]
	}
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix(envPrefix)); err != nil {
		if errors.Is(err, ff.ErrHelp) {
			opts.ShowHelp = true
			return opts, nil
		}
		return opts, fmt.Errorf("parse flags: %w", err)
	}

	opts.ConfigPath = *configPath
	opts.Mode = *mode
	opts.LogLevel = *logLevel
	opts.LogFormat = *logFormat
	opts.Policy = *policy
	opts.ShowSyllable = *showSyllable
	return opts, nil
}

// Apply layers the flags that were given over cfg and validates the result.
func (o Options) Apply(cfg config.Config) (config.Config, error) {
	if o.Mode != "" {
		cfg.Input.Mode = o.Mode
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
	if o.Policy != "" {
		cfg.Combiner.Policy = o.Policy
	}
	if o.ShowSyllable {
		cfg.Input.ShowSyllable = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
