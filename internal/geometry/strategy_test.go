package geometry

import (
	"testing"

	"github.com/inference-gateway/coordpick/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForMode(t *testing.T) {
	m, err := ForMode(domain.ModeCanonical, logical)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeCanonical, m.Mode())

	m, err = ForMode(domain.ModeDeferred, logical)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeDeferred, m.Mode())

	_, err = ForMode("letterbox", logical)
	assert.Error(t, err)
}

func TestNaturalMapper_WaitsForNaturalSize(t *testing.T) {
	mapper := NaturalMapper{Logical: logical}
	entry := &domain.GalleryEntry{ID: 1, Mode: domain.ModeDeferred}
	click := Click{X: 50, Y: 25}
	box := Box{Width: 100, Height: 50}

	_, err := mapper.Map(click, box, entry)
	assert.ErrorIs(t, err, domain.ErrMappingUnavailable)

	entry.SetNaturalSize(domain.Size{Width: 4000, Height: 3000})

	p, err := mapper.Map(click, box, entry)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 960, Y: 540}, p)

	_, err = mapper.Map(click, box, nil)
	assert.ErrorIs(t, err, domain.ErrMappingUnavailable)
}

func TestStretchedMapper_IgnoresNaturalSize(t *testing.T) {
	mapper := StretchedMapper{Logical: logical}
	entry := &domain.GalleryEntry{ID: 1, Mode: domain.ModeCanonical}

	p, err := mapper.Map(Click{X: 480, Y: 270}, Box{Width: 960, Height: 540}, entry)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 960, Y: 540}, p)
}
