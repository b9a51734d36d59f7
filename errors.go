package envflag

import (
	"errors"
	"fmt"
)

// Initialization state errors. Both are sentinels and carry no per-key
// context; compare with [errors.Is].
var (
	// ErrAlreadyInitialized indicates a second initialization attempt.
	// The first store stays in place; the caller decides whether to ignore.
	ErrAlreadyInitialized = errors.New("envflag is already initialized")
	// ErrNotInitialized indicates the store was queried before a successful
	// initialization. The builder and initializer layers return it; the
	// convenience accessors treat it as a programmer error and abort.
	ErrNotInitialized = errors.New("envflag is not initialized: call Init or NewInit().Init() before querying")
)

// NotSetError indicates a required environment variable is absent.
type NotSetError struct {
	// Key is the variable name that was not found.
	Key string
}

func (e *NotSetError) Error() string {
	return fmt.Sprintf("environment variable %q is not set", e.Key)
}

// AmbiguousPrefixError indicates that multiple prefixes are configured and a
// query did not choose one via WithPrefix.
type AmbiguousPrefixError struct {
	// Key is the short variable name that could not be resolved.
	Key string
}

func (e *AmbiguousPrefixError) Error() string {
	return fmt.Sprintf("ambiguous prefix for key %q: multiple prefixes configured, use WithPrefix to specify one", e.Key)
}

// ValidationError indicates a validator rejected the (normalized) raw value.
type ValidationError struct {
	Key   string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for key %q with value %q", e.Key, e.Value)
}

// ParseError indicates the raw value could not be converted to the target type.
type ParseError struct {
	Key   string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse key %q with value %q", e.Key, e.Value)
}

// FileError indicates the overlay file could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("error reading env file %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FormatError indicates the overlay file exists but failed to parse.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("error parsing env file %q: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
