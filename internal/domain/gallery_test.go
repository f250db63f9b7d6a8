package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Canonical")
	require.NoError(t, err)
	assert.Equal(t, ModeCanonical, m)

	m, err = ParseMode(" deferred ")
	require.NoError(t, err)
	assert.Equal(t, ModeDeferred, m)

	_, err = ParseMode("letterbox")
	assert.Error(t, err)
}

func TestGalleryEntry_NaturalSizeIsSetOnce(t *testing.T) {
	entry := &GalleryEntry{ID: 1}

	_, ok := entry.NaturalSize()
	assert.False(t, ok)

	assert.True(t, entry.SetNaturalSize(Size{Width: 800, Height: 600}))
	assert.False(t, entry.SetNaturalSize(Size{Width: 1, Height: 1}))

	size, ok := entry.NaturalSize()
	assert.True(t, ok)
	assert.Equal(t, Size{Width: 800, Height: 600}, size)
}

func TestGalleryEntry_SnapshotIsDetached(t *testing.T) {
	entry := &GalleryEntry{ID: 3}
	snap := entry.Snapshot()

	entry.SetNaturalSize(Size{Width: 10, Height: 10})

	_, ok := snap.NaturalSize()
	assert.False(t, ok)
}

func TestImageLoadError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := fmt.Errorf("add: %w", &ImageLoadError{Source: "data:image/png;base64," + strings.Repeat("A", 500), Err: cause})

	var loadErr *ImageLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, loadErr.Error(), "...")
	assert.Less(t, len(loadErr.Error()), 200)
}

func TestClipboardWriteError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ClipboardWriteError{Text: "1, 2", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `failed to copy "1, 2" to clipboard: permission denied`, err.Error())
}

func TestSize(t *testing.T) {
	assert.True(t, Size{Width: 1, Height: 1}.Valid())
	assert.False(t, Size{Width: 0, Height: 1}.Valid())
	assert.Equal(t, "1920x1080", Size{Width: 1920, Height: 1080}.String())
}
