package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/evertile/teaset/internal/keyspec"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "logging.level")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidKeyNames returns the rebindable app key names.
// These must match the bindings the gallery exposes for override.
func ValidKeyNames() []string {
	return []string{"help", "next-focus", "prev-focus", "quit"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found. Theme and filter names are not checked here: both fall back
// at runtime with a logged warning, and custom themes may be registered
// after the config is loaded.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validatePaths()...)
	errors = append(errors, c.validateKeys()...)

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

// validatePaths validates the PathsConfig
func (c *Config) validatePaths() []ValidationError {
	var errors []ValidationError

	if dir := c.Paths.ThemesDir; dir != "" {
		// Check for null bytes which are invalid in paths
		if strings.ContainsRune(dir, '\x00') {
			errors = append(errors, ValidationError{
				Field:   "paths.themes_dir",
				Value:   dir,
				Message: "path contains invalid null character",
			})
		}

		// Reasonable path length limit (most filesystems have limits around 4096)
		const maxPathLength = 4096
		if len(dir) > maxPathLength {
			errors = append(errors, ValidationError{
				Field:   "paths.themes_dir",
				Value:   dir,
				Message: fmt.Sprintf("path exceeds maximum length of %d characters", maxPathLength),
			})
		}
	}

	return errors
}

// validateKeys validates the rebindable app key overrides
func (c *Config) validateKeys() []ValidationError {
	var errors []ValidationError

	names := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		spec := c.Keys[name]
		field := "keys." + name

		if !slices.Contains(ValidKeyNames(), name) {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   spec,
				Message: fmt.Sprintf("unknown key name, must be one of: %s", strings.Join(ValidKeyNames(), ", ")),
			})
			continue
		}

		for _, part := range strings.Split(spec, ",") {
			if _, err := keyspec.Parse(strings.TrimSpace(part)); err != nil {
				errors = append(errors, ValidationError{
					Field:   field,
					Value:   spec,
					Message: err.Error(),
				})
			}
		}
	}

	return errors
}
