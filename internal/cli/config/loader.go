package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix namespaces the environment layer: SPARSEM_FORMAT -> format.
const envPrefix = "SPARSEM_"

// findConfigFile picks the config file to use.
// Priority: explicit path > sparsem.yaml > sparsem.yml > none.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"sparsem.yaml", "sparsem.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// Load merges configuration from defaults, an optional config file,
// environment variables and explicitly set flags, in that order of
// precedence (later layers win). A missing config file is only an error
// when it was requested explicitly.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":  DefaultFormat,
		"verbose": DefaultVerbose,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	// 2. Config file, when present.
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if cfgFile != "" {
		return nil, fmt.Errorf("config: file %s not found", cfgFile)
	}

	// 3. Environment variables (SPARSEM_FORMAT -> format).
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	// 4. Flags, highest priority; only the ones the user actually set.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
