package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	zap "go.uber.org/zap"

	constants "github.com/inference-gateway/coordpick/internal/constants"
	domain "github.com/inference-gateway/coordpick/internal/domain"
	geometry "github.com/inference-gateway/coordpick/internal/geometry"
	logger "github.com/inference-gateway/coordpick/internal/logger"
)

// ErrEmptySource is returned for blank submissions, which are ignored
var ErrEmptySource = errors.New("empty image source")

// ErrUnsupportedSource is returned when a submitted reference is neither an
// http(s) URL nor a data URL
var ErrUnsupportedSource = errors.New("image source must be an http(s) or data URL")

// ClickResult is the outcome of a mapped click
type ClickResult struct {
	Point  geometry.Point `json:"point"`
	Text   string         `json:"text"`
	Copied bool           `json:"copied"`
}

// GalleryController is the single owner of the gallery state. Adds run
// concurrently; each one inserts in a single critical section, so the gallery
// order is the order in which normalizations complete.
type GalleryController struct {
	gallery    *Gallery
	normalizer domain.Normalizer
	mapper     geometry.Mapper
	clipboard  domain.ClipboardSink
	notifier   domain.Notifier
	publisher  domain.EventPublisher

	wg sync.WaitGroup
}

// NewGalleryController wires a controller. The mapper must match the normalizer's mode.
func NewGalleryController(
	gallery *Gallery,
	normalizer domain.Normalizer,
	mapper geometry.Mapper,
	clipboard domain.ClipboardSink,
	notifier domain.Notifier,
	publisher domain.EventPublisher,
) (*GalleryController, error) {
	if normalizer.Mode() != mapper.Mode() {
		return nil, fmt.Errorf("normalizer mode %q does not match mapper mode %q", normalizer.Mode(), mapper.Mode())
	}

	if publisher == nil {
		publisher = domain.EventPublisherFunc(func(domain.Event) {})
	}

	return &GalleryController{
		gallery:    gallery,
		normalizer: normalizer,
		mapper:     mapper,
		clipboard:  clipboard,
		notifier:   notifier,
		publisher:  publisher,
	}, nil
}

// Gallery returns the owned gallery for read access
func (c *GalleryController) Gallery() *Gallery {
	return c.gallery
}

// Mode returns the normalization mode in effect
func (c *GalleryController) Mode() domain.Mode {
	return c.normalizer.Mode()
}

// Seed loads the placeholder image without leaving the seeded state
func (c *GalleryController) Seed(ctx context.Context, placeholderURL string) <-chan domain.AddResult {
	src := domain.Source{Kind: ClassifyRef(placeholderURL), Ref: placeholderURL}
	return c.add(ctx, src, c.gallery.Epoch(), true)
}

// SubmitURL adds an image from a URL (or data URL) typed by the user
func (c *GalleryController) SubmitURL(ctx context.Context, ref string) (<-chan domain.AddResult, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrEmptySource
	}

	kind := ClassifyRef(ref)
	if kind == domain.SourceFile {
		return nil, ErrUnsupportedSource
	}

	src := domain.Source{Kind: kind, Ref: ref}
	return c.add(ctx, src, c.beginUserSubmission(ctx), false), nil
}

// SubmitFile adds an image from bytes the user picked locally
func (c *GalleryController) SubmitFile(ctx context.Context, name string, data []byte) (<-chan domain.AddResult, error) {
	if len(data) == 0 {
		return nil, ErrEmptySource
	}

	src := domain.Source{Kind: domain.SourceData, Ref: name, Name: name, Data: data}
	return c.add(ctx, src, c.beginUserSubmission(ctx), false), nil
}

// beginUserSubmission replaces the placeholder set on the first user image and
// returns the epoch the submission belongs to
func (c *GalleryController) beginUserSubmission(ctx context.Context) uint64 {
	if c.gallery.ClearPlaceholder() {
		logger.L(ctx).Debug("Cleared placeholder set")
		c.publisher.Publish(domain.Event{Type: domain.EventGalleryReset})
	}
	return c.gallery.Epoch()
}

func (c *GalleryController) add(ctx context.Context, src domain.Source, epoch uint64, placeholder bool) <-chan domain.AddResult {
	results := make(chan domain.AddResult, 1)
	taskCtx := context.WithoutCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(results)
		results <- c.runAdd(taskCtx, src, epoch, placeholder)
	}()

	return results
}

func (c *GalleryController) runAdd(ctx context.Context, src domain.Source, epoch uint64, placeholder bool) domain.AddResult {
	log := logger.L(ctx).With(zap.String("source_kind", string(src.Kind)), zap.Bool("placeholder", placeholder))

	normalized, err := c.normalizer.Normalize(ctx, src)
	if err != nil {
		log.Error("Failed to normalize image", zap.Error(err))
		c.notifier.Notify(constants.LoadFailedMessage)
		return domain.AddResult{Err: err}
	}

	name := src.Name
	if name == "" && src.Kind == domain.SourceURL {
		name = src.Ref
	}

	entry, ok := c.gallery.Insert(epoch, c.normalizer.Mode(), normalized, name, placeholder)
	if !ok {
		log.Debug("Gallery cleared while image was loading, dropping it")
		return domain.AddResult{Dropped: true}
	}

	log.Debug("Inserted gallery entry", zap.Uint64("entry_id", entry.ID))
	c.publisher.Publish(domain.Event{Type: domain.EventGalleryEntry, Payload: *entry})

	if prober, ok := c.normalizer.(domain.NaturalSizeProber); ok {
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.probe(logger.WithEntry(ctx, entry.ID), prober, entry.ID, src)
		}()
	}

	return domain.AddResult{Entry: entry}
}

// probe records the natural size of a deferred entry. Failure only degrades mapping.
func (c *GalleryController) probe(ctx context.Context, prober domain.NaturalSizeProber, id uint64, src domain.Source) {
	size, err := prober.ProbeNaturalSize(ctx, src)
	if err != nil {
		logger.L(ctx).Warn("Could not read natural size, clicks on this entry stay unmapped", zap.Error(err))
		return
	}

	if c.gallery.RecordNaturalSize(id, size) {
		logger.L(ctx).Debug("Recorded natural size", zap.String("natural_size", size.String()))
	}
}

// HandleClick maps a click on an entry, copies the result and shows feedback.
// domain.ErrMappingUnavailable is returned without any side effect.
func (c *GalleryController) HandleClick(ctx context.Context, entryID uint64, click geometry.Click, box geometry.Box) (*ClickResult, error) {
	ctx = logger.WithEntry(ctx, entryID)

	entry, ok := c.gallery.Get(entryID)
	if !ok {
		return nil, domain.ErrEntryNotFound
	}

	point, err := c.mapper.Map(click, box, &entry)
	if err != nil {
		logger.L(ctx).Debug("Click ignored", zap.Error(err))
		return nil, err
	}

	localX, localY := box.Local(click)
	logger.L(ctx).Debug("Coordinate calculation",
		zap.String("rendered_size", fmt.Sprintf("%g x %g", box.Width, box.Height)),
		zap.String("click_local", fmt.Sprintf("%.2f, %.2f", localX, localY)),
		zap.String("coordinates", point.String()))

	result := &ClickResult{Point: point, Text: point.String()}

	switch err := c.clipboard.WriteText(ctx, result.Text); {
	case err == nil:
		result.Copied = true
		c.notifier.Notify(constants.CopiedMessagePrefix + result.Text)
	case errors.Is(err, ErrClipboardDisabled):
		logger.L(ctx).Debug("Clipboard disabled, copy left to the page", zap.String("text", result.Text))
	default:
		logger.L(ctx).Error("Failed to copy", zap.Error(err))
	}

	c.notifier.Ripple(entryID, localX, localY)

	return result, nil
}

// Wait blocks until all in-flight adds and probes have finished
func (c *GalleryController) Wait() {
	c.wg.Wait()
}

// Entries returns the current gallery entries in display order
func (c *GalleryController) Entries() []domain.GalleryEntry {
	return c.gallery.Entries()
}

// Entry returns a single entry
func (c *GalleryController) Entry(id uint64) (domain.GalleryEntry, bool) {
	return c.gallery.Get(id)
}
