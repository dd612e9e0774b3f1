package cli

import "errors"

// Exit codes for ruledoc.
const (
	// ExitSuccess indicates successful execution with all pages generated.
	ExitSuccess = 0

	// ExitDocErrors indicates generation completed but some rule pages
	// failed their documentation examples.
	ExitDocErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates settings file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrPagesFailed is returned when some rule pages failed to generate.
// The failures have already been reported; it only signals the exit code.
var ErrPagesFailed = errors.New("some rule pages failed to generate")

// errSettings wraps settings loading failures for exit code mapping.
type errSettings struct {
	err error
}

func (e errSettings) Error() string { return e.err.Error() }
func (e errSettings) Unwrap() error { return e.err }

// errWrite wraps output writing failures for exit code mapping.
type errWrite struct {
	err error
}

func (e errWrite) Error() string { return e.err.Error() }
func (e errWrite) Unwrap() error { return e.err }

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrPagesFailed) {
		return ExitDocErrors
	}

	var settingsErr errSettings
	if errors.As(err, &settingsErr) {
		return ExitConfigError
	}

	var writeErr errWrite
	if errors.As(err, &writeErr) {
		return ExitIOError
	}

	return ExitInternalError
}
