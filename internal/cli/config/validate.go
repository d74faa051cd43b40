package config

import (
	"fmt"

	"github.com/leapstack-labs/i18nlint/pkg/core"
)

// validOutputFormats are the accepted values for the output setting.
var validOutputFormats = map[string]bool{
	"":         true, // resolved to auto
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks the configuration for values that would only fail later,
// deep inside a command.
func Validate(cfg *Config) error {
	if !validOutputFormats[cfg.OutputFormat] {
		return fmt.Errorf("invalid output format %q (valid: auto, text, markdown, json)", cfg.OutputFormat)
	}

	if cfg.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}

	if cfg.Lint != nil {
		for id, sev := range cfg.Lint.Severity {
			if _, ok := core.ParseSeverity(sev); !ok {
				return fmt.Errorf("invalid severity %q for rule %s (valid: error, warning, info, hint)", sev, id)
			}
		}
	}

	return nil
}
