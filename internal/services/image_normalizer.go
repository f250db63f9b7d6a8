package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	config "github.com/inference-gateway/coordpick/config"
	domain "github.com/inference-gateway/coordpick/internal/domain"
	logger "github.com/inference-gateway/coordpick/internal/logger"
)

// CanonicalNormalizer stretches every source onto a fixed logical surface.
// Aspect ratio is not preserved, so mapping a click stays a plain linear scale.
type CanonicalNormalizer struct {
	resolver   domain.SourceResolver
	size       domain.Size
	background color.RGBA
}

// NewCanonicalNormalizer creates a normalizer for the configured gallery resolution
func NewCanonicalNormalizer(resolver domain.SourceResolver, cfg config.GalleryConfig) (*CanonicalNormalizer, error) {
	rgb, err := config.ParseHexColor(cfg.Background)
	if err != nil {
		return nil, err
	}

	size := domain.Size{Width: cfg.Width, Height: cfg.Height}
	if !size.Valid() {
		return nil, fmt.Errorf("invalid logical size %s", size)
	}

	return &CanonicalNormalizer{
		resolver:   resolver,
		size:       size,
		background: color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff},
	}, nil
}

// Mode implements domain.Normalizer
func (n *CanonicalNormalizer) Mode() domain.Mode {
	return domain.ModeCanonical
}

// Normalize resolves, decodes and stretches the source, returning a PNG raster
func (n *CanonicalNormalizer) Normalize(ctx context.Context, src domain.Source) (*domain.Normalized, error) {
	data, err := n.resolver.Resolve(ctx, src)
	if err != nil {
		return nil, &domain.ImageLoadError{Source: src.Ref, Err: err}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &domain.ImageLoadError{Source: src.Ref, Err: fmt.Errorf("failed to decode image: %w", err)}
	}

	surface := n.Stretch(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, surface); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	logger.L(ctx).Sugar().Debugw("Normalized image",
		"source_format", format,
		"source_size", img.Bounds().Size().String(),
		"logical_size", n.size.String(),
		"bytes", buf.Len())

	return &domain.Normalized{
		Raster: domain.Raster{Data: buf.Bytes(), MimeType: "image/png"},
		Size:   n.size,
	}, nil
}

// Stretch paints the background and scales img to cover the whole logical surface
func (n *CanonicalNormalizer) Stretch(img image.Image) *image.RGBA {
	surface := image.NewRGBA(image.Rect(0, 0, n.size.Width, n.size.Height))
	draw.Draw(surface, surface.Bounds(), &image.Uniform{C: n.background}, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(surface, surface.Bounds(), img, img.Bounds(), draw.Over, nil)
	return surface
}

// DeferredNormalizer accepts sources unchanged; the natural size is probed separately
type DeferredNormalizer struct {
	resolver domain.SourceResolver
}

// NewDeferredNormalizer creates a pass-through normalizer
func NewDeferredNormalizer(resolver domain.SourceResolver) *DeferredNormalizer {
	return &DeferredNormalizer{resolver: resolver}
}

// Mode implements domain.Normalizer
func (n *DeferredNormalizer) Mode() domain.Mode {
	return domain.ModeDeferred
}

// Normalize keeps the reference; bytes are carried only when already in hand
func (n *DeferredNormalizer) Normalize(_ context.Context, src domain.Source) (*domain.Normalized, error) {
	raster := domain.Raster{Ref: src.Ref, Data: src.Data}

	if src.Kind == domain.SourceData && len(raster.Data) == 0 {
		if data, mediaType, err := DecodeDataURL(src.Ref); err == nil {
			raster.Data = data
			raster.MimeType = mediaType
		}
	}

	return &domain.Normalized{Raster: raster}, nil
}

// ProbeNaturalSize reads the source header to get its intrinsic dimensions
func (n *DeferredNormalizer) ProbeNaturalSize(ctx context.Context, src domain.Source) (domain.Size, error) {
	data, err := n.resolver.Resolve(ctx, src)
	if err != nil {
		return domain.Size{}, &domain.ImageLoadError{Source: src.Ref, Err: err}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return domain.Size{}, &domain.ImageLoadError{Source: src.Ref, Err: fmt.Errorf("failed to decode image: %w", err)}
	}

	return domain.Size{Width: cfg.Width, Height: cfg.Height}, nil
}

// NewNormalizer returns the normalizer for the configured gallery mode
func NewNormalizer(resolver domain.SourceResolver, cfg config.GalleryConfig) (domain.Normalizer, error) {
	mode, err := domain.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	switch mode {
	case domain.ModeDeferred:
		return NewDeferredNormalizer(resolver), nil
	default:
		return NewCanonicalNormalizer(resolver, cfg)
	}
}
