package cmd

import (
	"errors"
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	domain "github.com/inference-gateway/coordpick/internal/domain"
	geometry "github.com/inference-gateway/coordpick/internal/geometry"
)

var logical = domain.Size{Width: 1920, Height: 1080}

func TestMapClick(t *testing.T) {
	natural4K := &domain.Size{Width: 3840, Height: 2160}

	tests := []struct {
		name    string
		opts    mapOptions
		want    string
		wantErr error
	}{
		{
			name: "canonical center of half-scale box",
			opts: mapOptions{
				mode:    domain.ModeCanonical,
				logical: logical,
				click:   geometry.Click{X: 580, Y: 320},
				box:     geometry.Box{Left: 100, Top: 50, Width: 960, Height: 540},
			},
			want: "960, 540",
		},
		{
			name: "canonical bottom-right corner is not clamped",
			opts: mapOptions{
				mode:    domain.ModeCanonical,
				logical: logical,
				click:   geometry.Click{X: 960, Y: 540},
				box:     geometry.Box{Width: 960, Height: 540},
			},
			want: "1920, 1080",
		},
		{
			name: "deferred through natural size",
			opts: mapOptions{
				mode:    domain.ModeDeferred,
				logical: logical,
				click:   geometry.Click{X: 640, Y: 360},
				box:     geometry.Box{Width: 1280, Height: 720},
				natural: natural4K,
			},
			want: "960, 540",
		},
		{
			name: "deferred without natural size",
			opts: mapOptions{
				mode:    domain.ModeDeferred,
				logical: logical,
				click:   geometry.Click{X: 1, Y: 1},
				box:     geometry.Box{Width: 10, Height: 10},
			},
			wantErr: domain.ErrMappingUnavailable,
		},
		{
			name: "zero sized box",
			opts: mapOptions{
				mode:    domain.ModeCanonical,
				logical: logical,
				click:   geometry.Click{X: 1, Y: 1},
			},
			wantErr: domain.ErrMappingUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := mapClick(tt.opts)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, point.String())
		})
	}
}

func TestParseFloats(t *testing.T) {
	values, err := parseFloats(" 1.5, -2 ,3,4", 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 3, 4}, values)

	_, err = parseFloats("1,2,3", 2)
	assert.Error(t, err)

	_, err = parseFloats("1,abc", 2)
	assert.Error(t, err)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.Size
		wantErr bool
	}{
		{input: "3840x2160", want: domain.Size{Width: 3840, Height: 2160}},
		{input: "800X600", want: domain.Size{Width: 800, Height: 600}},
		{input: "800", wantErr: true},
		{input: "axb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			size, err := parseSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, size)
		})
	}
}
