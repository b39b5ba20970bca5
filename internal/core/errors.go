// internal/core/errors.go
package core

import "errors"

// Define custom errors for better error handling and classification
var (
	ErrAuthentication = errors.New("shodan authentication failed (invalid or missing API key)")
	ErrRateLimited    = errors.New("shodan rate limit reached")
	ErrOutputFormat   = errors.New("unsupported output format")
	ErrFileWrite      = errors.New("failed to write to file")
)
