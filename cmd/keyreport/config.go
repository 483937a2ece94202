package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Siri-chan/getkey/input"
)

const keysSection = "keys"

// Config is the optional config file; flags given on the command line win
type Config struct {
	Backend string         `toml:"backend" yaml:"backend"`
	Count   int            `toml:"count" yaml:"count"`
	JSON    bool           `toml:"json" yaml:"json"`
	Debug   bool           `toml:"debug" yaml:"debug"`
	Keys    map[string]any `toml:"keys" yaml:"keys"`
}

func defaultConfig() *Config {
	return &Config{Backend: backendNative}
}

// loadConfig reads a config file, choosing the decoder by extension
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}

	return cfg, nil
}

// applyFlags overrides cfg with the flags that were set explicitly
func applyFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backendFlag
		case "n":
			cfg.Count = *countFlag
		case "json":
			cfg.JSON = *jsonFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
}

// keyTable builds the active bindings: defaults overridden by the keys section
func keyTable(cfg *Config) (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(cfg.Keys) == 0 {
		return base, nil
	}
	override, err := input.LoadKeyConfig(keysSection, cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return input.MergeKeyTable(base, override), nil
}
