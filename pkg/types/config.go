// Package types defines the Record model, RecordSource interface, report-type
// schemas, statuses, and standard errors for the SafetyDesk browsing engine.
package types

import "errors"

// Config selects where records come from. Exactly one of BackendURL or
// DataDir is used: a non-empty BackendURL points commands at a remote REST
// backend, otherwise DataDir names the local store directory.
type Config struct {
	BackendURL string `json:"backend_url" yaml:"backend_url" mapstructure:"backend_url"`
	DataDir    string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// Config validation errors.
var (
	ErrNoSource        = errors.New("either backend_url or data_dir must be set")
	ErrAmbiguousSource = errors.New("backend_url and data_dir are mutually exclusive")
)

// Validate checks that the Config names exactly one record source.
func (c Config) Validate() error {
	if c.BackendURL == "" && c.DataDir == "" {
		return ErrNoSource
	}
	if c.BackendURL != "" && c.DataDir != "" {
		return ErrAmbiguousSource
	}
	return nil
}

// User is the operator identity loaded once at startup and passed to
// commands as a read-only value.
type User struct {
	EmployeeID string `json:"employee_id" yaml:"employee_id" mapstructure:"employee_id"`
	Name       string `json:"name" yaml:"name" mapstructure:"name"`
	Role       string `json:"role" yaml:"role" mapstructure:"role"`
}
