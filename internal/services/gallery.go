package services

import (
	"sync"
	"time"

	domain "github.com/inference-gateway/coordpick/internal/domain"
)

// Gallery owns the ordered list of entries. Entries are append-only until Clear.
type Gallery struct {
	mu      sync.RWMutex
	entries []*domain.GalleryEntry
	nextID  uint64
	epoch   uint64
	// seeded stays true until the first user submission replaces the placeholder set
	seeded bool
	now    func() time.Time
}

// NewGallery creates an empty gallery in its seeded state
func NewGallery() *Gallery {
	return &Gallery{
		nextID: 1,
		seeded: true,
		now:    time.Now,
	}
}

// Epoch returns the current clear generation
func (g *Gallery) Epoch() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.epoch
}

// Insert appends a new entry if the gallery has not been cleared since epoch.
// The id is assigned here, so ids follow insertion order.
func (g *Gallery) Insert(epoch uint64, mode domain.Mode, n *domain.Normalized, name string, placeholder bool) (*domain.GalleryEntry, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if epoch != g.epoch {
		return nil, false
	}

	entry := &domain.GalleryEntry{
		ID:          g.nextID,
		Mode:        mode,
		Source:      n.Raster,
		Name:        name,
		Placeholder: placeholder,
		CreatedAt:   g.now(),
	}
	g.nextID++
	g.entries = append(g.entries, entry)

	snap := entry.Snapshot()
	return &snap, true
}

// ClearPlaceholder drops the placeholder set the first time a user submits an
// image. It reports whether anything was cleared.
func (g *Gallery) ClearPlaceholder() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.seeded {
		return false
	}
	g.clearLocked()
	g.seeded = false
	return true
}

// Seeded reports whether the gallery still shows only the placeholder set
func (g *Gallery) Seeded() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.seeded
}

// Clear removes every entry and invalidates in-flight inserts
func (g *Gallery) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clearLocked()
}

func (g *Gallery) clearLocked() {
	g.entries = nil
	g.epoch++
}

// RecordNaturalSize stores a deferred entry's natural size once
func (g *Gallery) RecordNaturalSize(id uint64, size domain.Size) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.entries {
		if e.ID == id {
			return e.SetNaturalSize(size)
		}
	}
	return false
}

// Get returns a snapshot of one entry
func (g *Gallery) Get(id uint64) (domain.GalleryEntry, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.entries {
		if e.ID == id {
			return e.Snapshot(), true
		}
	}
	return domain.GalleryEntry{}, false
}

// Entries returns snapshots of all entries in insertion order
func (g *Gallery) Entries() []domain.GalleryEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]domain.GalleryEntry, 0, len(g.entries))
	for _, e := range g.entries {
		out = append(out, e.Snapshot())
	}
	return out
}

// Len returns the number of entries
func (g *Gallery) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries)
}
