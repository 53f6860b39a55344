package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string // the config key, e.g. "tempo"
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting of a Config.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the accepted log levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the accepted log formats.
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

func checkRange(field string, value, min, max int) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{field, value, fmt.Sprintf("must be between %d and %d", min, max)}}
	}
	return nil
}

// Validate returns every invalid setting of c; an empty result means c is
// usable.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors
	errs = append(errs, checkRange("degrees", c.Degrees, 1, 11)...)
	errs = append(errs, checkRange("exercises", c.Exercises, 1, 1000)...)
	errs = append(errs, checkRange("tempo", c.Tempo, 40, 250)...)
	errs = append(errs, checkRange("pause", c.Pause, 1, 10)...)
	if c.MaxAttempts < 0 {
		errs = append(errs, ValidationError{"max_attempts", c.MaxAttempts, "must not be negative"})
	}
	if c.DirectoryPrefix == "" {
		errs = append(errs, ValidationError{"directory_prefix", c.DirectoryPrefix, "must not be empty"})
	}
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.LogLevel)) {
		errs = append(errs, ValidationError{"log_level", c.LogLevel, fmt.Sprintf("must be one of %v", ValidLogLevels())})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.LogFormat)) {
		errs = append(errs, ValidationError{"log_format", c.LogFormat, fmt.Sprintf("must be one of %v", ValidLogFormats())})
	}
	errs = append(errs, c.validateRange()...)
	return errs
}

func (c *Config) validateRange() []ValidationError {
	r, err := c.PitchRange()
	if err != nil {
		return []ValidationError{{"range", c.Range, err.Error()}}
	}
	var errs []ValidationError
	if r.Low < 0 || r.High > 127 {
		errs = append(errs, ValidationError{"range", r.String(), "must lie within the midi range 0..127"})
	}
	if r.Len() == 0 {
		errs = append(errs, ValidationError{"range", r.String(), "must not be empty"})
	}
	return errs
}
