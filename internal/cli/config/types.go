// Package config provides configuration management for the sparsem CLI.
//
// Configuration is merged from four layers, lowest to highest precedence:
// built-in defaults, a sparsem.yaml/sparsem.yml file in the working
// directory, SPARSEM_* environment variables, and explicitly set CLI flags.
package config

import "fmt"

// Rendering formats accepted by the show command and the "format" key.
const (
	FormatTable = "table"
	FormatText  = "text"
)

// Default configuration values, the single source of truth for layer one.
const (
	DefaultFormat  = FormatTable
	DefaultVerbose = false
)

// Config holds the merged CLI configuration.
type Config struct {
	// Format selects the default rendering for show: "table" or "text".
	Format string `koanf:"format"`
	// Verbose enables debug-level logging on stderr.
	Verbose bool `koanf:"verbose"`
}

// Validate checks the merged configuration for values no command could act on.
func (c *Config) Validate() error {
	if c.Format != FormatTable && c.Format != FormatText {
		return fmt.Errorf("config: format must be %q or %q, got %q", FormatTable, FormatText, c.Format)
	}

	return nil
}
