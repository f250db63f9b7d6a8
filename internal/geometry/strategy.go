package geometry

import (
	"fmt"

	"github.com/inference-gateway/coordpick/internal/domain"
)

// Mapper maps a click on a gallery entry into the logical resolution
type Mapper interface {
	Mode() domain.Mode
	Map(click Click, box Box, entry *domain.GalleryEntry) (Point, error)
}

// StretchedMapper serves canonical-mode galleries
type StretchedMapper struct {
	Logical domain.Size
}

func (m StretchedMapper) Mode() domain.Mode { return domain.ModeCanonical }

// Map ignores any natural size: the raster is already logical-sized
func (m StretchedMapper) Map(click Click, box Box, _ *domain.GalleryEntry) (Point, error) {
	return MapStretched(click, box, m.Logical)
}

// NaturalMapper serves deferred-mode galleries
type NaturalMapper struct {
	Logical domain.Size
}

func (m NaturalMapper) Mode() domain.Mode { return domain.ModeDeferred }

// Map requires the entry's natural size to have been recorded
func (m NaturalMapper) Map(click Click, box Box, entry *domain.GalleryEntry) (Point, error) {
	if entry == nil {
		return Point{}, domain.ErrMappingUnavailable
	}
	natural, ok := entry.NaturalSize()
	if !ok {
		return Point{}, domain.ErrMappingUnavailable
	}
	return MapNatural(click, box, &natural, m.Logical)
}

// ForMode returns the mapper matching a normalizer mode
func ForMode(mode domain.Mode, logical domain.Size) (Mapper, error) {
	switch mode {
	case domain.ModeCanonical:
		return StretchedMapper{Logical: logical}, nil
	case domain.ModeDeferred:
		return NaturalMapper{Logical: logical}, nil
	default:
		return nil, fmt.Errorf("no mapper for mode %q", mode)
	}
}
