package domain

import (
	"errors"
	"fmt"
)

// ErrMappingUnavailable is returned when a click cannot be mapped yet,
// either because the element has no layout size or the natural size is unknown
var ErrMappingUnavailable = errors.New("mapping unavailable")

// ErrEntryNotFound is returned when a click refers to an unknown entry
var ErrEntryNotFound = errors.New("gallery entry not found")

// ImageLoadError represents a source that could not be fetched or decoded
type ImageLoadError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("failed to load image %s: %v", truncateRef(e.Source), e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// ClipboardWriteError represents a failed clipboard write
type ClipboardWriteError struct {
	Text string
	Err  error
}

// Error implements the error interface
func (e *ClipboardWriteError) Error() string {
	return fmt.Sprintf("failed to copy %q to clipboard: %v", e.Text, e.Err)
}

func (e *ClipboardWriteError) Unwrap() error {
	return e.Err
}

// truncateRef keeps data URLs from flooding error messages
func truncateRef(ref string) string {
	const limit = 96
	if len(ref) <= limit {
		return ref
	}
	return ref[:limit] + "..."
}
