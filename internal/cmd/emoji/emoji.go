// Package emoji provides symbol constants for CLI output.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents successful completion of an operation.
	Success = "✓"

	// Error represents failures such as a dataset that does not load.
	Error = "✗"

	// Stop represents graceful shutdowns and stop signals.
	Stop = "■"

	// Info represents informational messages.
	Info = "i"
)
