package models

import (
	"errors"
	"fmt"
	"io/fs"
)

// SourceErrorKind identifies which stage of loading a source failed.
type SourceErrorKind int

const (
	// PathNotFound means a source path given by the caller does not exist.
	PathNotFound SourceErrorKind = iota
	// OpenFailed means a resolved file could not be opened.
	OpenFailed
	// ReadFailed means a resolved file could not be read to the end.
	ReadFailed
)

// String returns the string representation of SourceErrorKind.
func (k SourceErrorKind) String() string {
	switch k {
	case PathNotFound:
		return "path not found"
	case OpenFailed:
		return "open failed"
	case ReadFailed:
		return "read failed"
	default:
		return "unknown"
	}
}

// SourceError reports a fatal failure loading fortunes from a path.
type SourceError struct {
	Kind SourceErrorKind
	Path string
	Err  error
}

// NewSourceError creates a SourceError of the given kind.
func NewSourceError(kind SourceErrorKind, path string, err error) *SourceError {
	return &SourceError{Kind: kind, Path: path, Err: err}
}

// Error implements the error interface. The os layer already names the path
// inside *fs.PathError, so only its inner cause is printed.
func (e *SourceError) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	if cause == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Path, cause)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsSourceError reports whether err is a SourceError of the given kind.
func IsSourceError(err error, kind SourceErrorKind) bool {
	var srcErr *SourceError
	return errors.As(err, &srcErr) && srcErr.Kind == kind
}
