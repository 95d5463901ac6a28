// Package emoji provides symbol constants for CLI output.
package emoji

// Symbol constants shared by alerts and status output.
const (
	// Success marks a completed operation or a configured key.
	Success = "✓"

	// Error marks a failure or a missing key.
	Error = "✗"

	// Warning marks a non-fatal issue.
	Warning = "!"

	// Info marks neutral status lines.
	Info = "i"
)
