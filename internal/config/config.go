// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

// Package config loads runtime configuration: an optional YAML file
// layered under the command-line flags.
package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Log configures the structured logger.
type Log struct {
	Format string `koanf:"format"` // "json" or "text"
	Level  string `koanf:"level"`  // debug, info, warn, error
}

// REPL configures interactive sessions.
type REPL struct {
	Prompt string `koanf:"prompt"`
}

// Config is the interpreter's runtime configuration.
type Config struct {
	Log  Log  `koanf:"log"`
	REPL REPL `koanf:"repl"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:  Log{Format: "text", Level: "info"},
		REPL: REPL{Prompt: "> "},
	}
}

// Load layers the YAML file at path (when non-empty) and the given
// flag set over the defaults. Flags win over the file; dashes in flag
// names map to config key separators (log-format → log.format).
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.With("path", path).Wrapf(err, "loading config file")
		}
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			return strings.ReplaceAll(f.Name, "-", "."), posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Wrapf(err, "loading flags")
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, oops.Wrapf(err, "unmarshalling config")
	}
	return cfg, nil
}
