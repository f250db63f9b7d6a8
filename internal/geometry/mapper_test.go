package geometry

import (
	"testing"

	"github.com/inference-gateway/coordpick/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logical = domain.Size{Width: 1920, Height: 1080}

func TestMapStretched(t *testing.T) {
	tests := []struct {
		name     string
		click    Click
		box      Box
		expected Point
	}{
		{
			name:     "half scale center",
			click:    Click{X: 480, Y: 270},
			box:      Box{Width: 960, Height: 540},
			expected: Point{X: 960, Y: 540},
		},
		{
			name:     "offset box",
			click:    Click{X: 580, Y: 320},
			box:      Box{Left: 100, Top: 50, Width: 960, Height: 540},
			expected: Point{X: 960, Y: 540},
		},
		{
			name:     "top left corner",
			click:    Click{X: 10, Y: 20},
			box:      Box{Left: 10, Top: 20, Width: 640, Height: 360},
			expected: Point{X: 0, Y: 0},
		},
		{
			name:     "bottom right corner is not clamped",
			click:    Click{X: 640, Y: 360},
			box:      Box{Width: 640, Height: 360},
			expected: Point{X: 1920, Y: 1080},
		},
		{
			name:     "fractional rendered size",
			click:    Click{X: 100.5, Y: 33.3},
			box:      Box{Width: 333.3, Height: 187.5},
			expected: Point{X: 579, Y: 192},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := MapStretched(tt.click, tt.box, logical)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestMapStretched_RoundsHalfUp(t *testing.T) {
	small := domain.Size{Width: 16, Height: 16}
	box := Box{Width: 64, Height: 64}

	p, err := MapStretched(Click{X: 2, Y: 6}, box, small)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 1, Y: 2}, p)
}

func TestMapStretched_Unavailable(t *testing.T) {
	boxes := []Box{
		{Width: 0, Height: 540},
		{Width: 960, Height: 0},
		{Width: -1, Height: 540},
	}

	for _, box := range boxes {
		_, err := MapStretched(Click{X: 1, Y: 1}, box, logical)
		assert.ErrorIs(t, err, domain.ErrMappingUnavailable)
	}
}

func TestMapStretched_InBoundsStaysInRange(t *testing.T) {
	box := Box{Left: 13, Top: 7, Width: 777, Height: 437}

	for x := 0.0; x <= box.Width; x += 7.7 {
		for y := 0.0; y <= box.Height; y += 5.3 {
			p, err := MapStretched(Click{X: box.Left + x, Y: box.Top + y}, box, logical)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p.X, 0)
			assert.LessOrEqual(t, p.X, 1920)
			assert.GreaterOrEqual(t, p.Y, 0)
			assert.LessOrEqual(t, p.Y, 1080)
		}
	}
}

func TestMapStretched_Idempotent(t *testing.T) {
	click := Click{X: 123.456, Y: 78.9}
	box := Box{Left: 3, Top: 4, Width: 812, Height: 457}

	first, err := MapStretched(click, box, logical)
	require.NoError(t, err)
	second, err := MapStretched(click, box, logical)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMapNatural(t *testing.T) {
	natural := &domain.Size{Width: 1200, Height: 800}

	t.Run("center", func(t *testing.T) {
		p, err := MapNatural(Click{X: 480, Y: 270}, Box{Width: 960, Height: 540}, natural, logical)
		require.NoError(t, err)
		assert.Equal(t, Point{X: 960, Y: 540}, p)
	})

	t.Run("agrees with stretched mapping", func(t *testing.T) {
		box := Box{Left: 20, Top: 40, Width: 601, Height: 401}
		for _, c := range []Click{{X: 20, Y: 40}, {X: 321.7, Y: 99.2}, {X: 621, Y: 441}} {
			want, err := MapStretched(c, box, logical)
			require.NoError(t, err)
			got, err := MapNatural(c, box, natural, logical)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("missing natural size", func(t *testing.T) {
		_, err := MapNatural(Click{X: 1, Y: 1}, Box{Width: 10, Height: 10}, nil, logical)
		assert.ErrorIs(t, err, domain.ErrMappingUnavailable)
	})

	t.Run("zero natural size", func(t *testing.T) {
		_, err := MapNatural(Click{X: 1, Y: 1}, Box{Width: 10, Height: 10}, &domain.Size{}, logical)
		assert.ErrorIs(t, err, domain.ErrMappingUnavailable)
	})

	t.Run("zero rendered size", func(t *testing.T) {
		_, err := MapNatural(Click{X: 1, Y: 1}, Box{}, natural, logical)
		assert.ErrorIs(t, err, domain.ErrMappingUnavailable)
	})
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "960, 540", Point{X: 960, Y: 540}.String())
	assert.Equal(t, "-3, 1080", Point{X: -3, Y: 1080}.String())
}
