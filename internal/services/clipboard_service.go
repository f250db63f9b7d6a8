package services

import (
	"context"
	"errors"

	clipboard "github.com/inference-gateway/coordpick/internal/clipboard"
	domain "github.com/inference-gateway/coordpick/internal/domain"
)

// SystemClipboard writes coordinate text to the OS clipboard
type SystemClipboard struct {
	write func(string) error
}

// NewSystemClipboard creates a clipboard sink backed by the system clipboard
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{write: clipboard.WriteText}
}

// WriteText implements domain.ClipboardSink
func (c *SystemClipboard) WriteText(_ context.Context, text string) error {
	if err := c.write(text); err != nil {
		return &domain.ClipboardWriteError{Text: text, Err: err}
	}
	return nil
}

// ErrClipboardDisabled is wrapped by DisabledClipboard writes
var ErrClipboardDisabled = errors.New("clipboard disabled")

// DisabledClipboard is used when the system clipboard is turned off. Every
// write fails so the click is reported as not copied and the page copies it.
type DisabledClipboard struct{}

// WriteText implements domain.ClipboardSink
func (DisabledClipboard) WriteText(_ context.Context, text string) error {
	return &domain.ClipboardWriteError{Text: text, Err: ErrClipboardDisabled}
}

// NewClipboardSink picks the sink for the configuration
func NewClipboardSink(enabled bool) domain.ClipboardSink {
	if !enabled {
		return DisabledClipboard{}
	}
	return NewSystemClipboard()
}
