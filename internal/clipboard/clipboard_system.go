//go:build (darwin || linux || windows) && !test

package clipboard

import (
	"sync"

	xclipboard "golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard once; later calls return the first result
func Init() error {
	initOnce.Do(func() {
		initErr = xclipboard.Init()
	})
	return initErr
}

// Write writes data to clipboard in the specified format
func Write(format Format, data []byte) error {
	if err := Init(); err != nil {
		return err
	}
	xclipboard.Write(xclipboard.Format(format), data)
	return nil
}

// Format represents clipboard data format
type Format int

// FmtText is the only format coordinates are written in
const FmtText Format = Format(xclipboard.FmtText)
