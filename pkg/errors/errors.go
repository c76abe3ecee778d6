// Package errors defines the error values shared across wags-tails and small
// helpers for attaching context to them.
package errors

import "fmt"

// Common error types.
var (
	// Request validation errors.
	ErrExclusiveOptions = fmt.Errorf("cannot set both force_refresh and from_local")
	ErrUnknownSource    = fmt.Errorf("unknown source name")
	ErrInvalidConfig    = fmt.Errorf("invalid source configuration")

	// Remote acquisition errors.
	ErrRemoteData          = fmt.Errorf("unable to parse expected data from remote resource")
	ErrDownloadFailed      = fmt.Errorf("download failed")
	ErrMissingCredential   = fmt.Errorf("required credential not found in environment")
	ErrSpecificUnsupported = fmt.Errorf("source does not support retrieval of specific versions")

	// Local storage errors.
	ErrLocalNotFound = fmt.Errorf("no matching local data file")
	ErrVersionParse  = fmt.Errorf("unable to parse version from filename")
	ErrInvalidPath   = fmt.Errorf("invalid path")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
