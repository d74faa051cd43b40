// Package config loads i18nlint configuration with koanf, layering defaults,
// an optional i18nlint.yaml config file, I18NLINT_-prefixed environment
// variables and CLI flags, in increasing order of precedence.
package config
