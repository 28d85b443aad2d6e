package sfoglia

import (
	"errors"
	"fmt"
)

// Sentinel errors for controller construction.
var (
	// ErrNilHost indicates New was called without a routing host.
	ErrNilHost = errors.New("sfoglia: host must not be nil")
)

// ConfigError represents a failure loading or validating drawer
// configuration. These surface at startup, never during choreography: once a
// controller exists, the framework recovers every runtime condition locally
// and renders a placeholder panel instead of failing.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "load_options", "parse_color")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sfoglia: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sfoglia: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
