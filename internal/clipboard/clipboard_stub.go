//go:build !(darwin || linux || windows) || test

package clipboard

import "errors"

// ErrUnsupported is returned when the build has no system clipboard
var ErrUnsupported = errors.New("clipboard not supported in this build configuration")

// Init initializes the clipboard (stub implementation)
func Init() error {
	return ErrUnsupported
}

// Write writes data to clipboard in the specified format (stub implementation)
func Write(format Format, data []byte) error {
	return ErrUnsupported
}

// Format represents clipboard data format
type Format int

// FmtText is the only format coordinates are written in
const FmtText Format = 0
