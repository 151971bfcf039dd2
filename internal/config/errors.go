// Package config provides configuration and rubric loading for the CLI and pipeline.
package config

import "fmt"

// ConfigurationError represents invalid rubric or configuration values.
// It is fatal: raised before any checkpoint runs and never recovered.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
