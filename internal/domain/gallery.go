package domain

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects how sources are normalized and, consequently, how clicks are mapped
type Mode string

const (
	// ModeCanonical stretches the source onto the logical surface at load time
	ModeCanonical Mode = "canonical"
	// ModeDeferred keeps the source and maps clicks through its natural size
	ModeDeferred Mode = "deferred"
)

// ParseMode converts a configuration value into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCanonical:
		return ModeCanonical, nil
	case ModeDeferred:
		return ModeDeferred, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Size is a width/height pair in pixels
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether both dimensions are positive
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// SourceKind tells where an image reference points to
type SourceKind string

const (
	SourceURL  SourceKind = "url"
	SourceData SourceKind = "data"
	SourceFile SourceKind = "file"
)

// Source is a raw image reference submitted by the user
type Source struct {
	Kind SourceKind
	// Ref is the URL, data URL or file path as submitted
	Ref string
	// Data holds bytes the caller already has in hand (uploads); may be nil
	Data []byte
	// Name is a display name, e.g. the uploaded file name
	Name string
}

// Raster is an encoded image payload
type Raster struct {
	Data     []byte
	MimeType string
	// Ref is kept for deferred sources so the page can load the original
	Ref string
}

// Normalized is the output of a Normalizer
type Normalized struct {
	Raster Raster
	// Size is the logical size of the raster in canonical mode, zero otherwise
	Size Size
}

// GalleryEntry is one accepted image with its metadata
type GalleryEntry struct {
	ID          uint64
	Mode        Mode
	Source      Raster
	Name        string
	Placeholder bool
	CreatedAt   time.Time

	natural *Size
}

// NaturalSize returns the recorded natural size, if any
func (e *GalleryEntry) NaturalSize() (Size, bool) {
	if e.natural == nil {
		return Size{}, false
	}
	return *e.natural, true
}

// SetNaturalSize records the natural size once; later calls are ignored
func (e *GalleryEntry) SetNaturalSize(s Size) bool {
	if e.natural != nil {
		return false
	}
	e.natural = &s
	return true
}

// Snapshot returns a copy safe to hand out of the gallery lock
func (e *GalleryEntry) Snapshot() GalleryEntry {
	c := *e
	if e.natural != nil {
		n := *e.natural
		c.natural = &n
	}
	return c
}

// AddResult is delivered once an asynchronous add completes
type AddResult struct {
	Entry *GalleryEntry
	Err   error
	// Dropped is set when the gallery was cleared while the add was in flight
	Dropped bool
}
