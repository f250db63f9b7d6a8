package domain

import "context"

//go:generate go tool counterfeiter -generate

//counterfeiter:generate -o ../../tests/mocks/domain/fake_source_resolver.go . SourceResolver

// SourceResolver turns a Source into raw encoded bytes
type SourceResolver interface {
	Resolve(ctx context.Context, src Source) ([]byte, error)
}

// Normalizer converts a submitted source into a gallery payload
type Normalizer interface {
	Mode() Mode
	Normalize(ctx context.Context, src Source) (*Normalized, error)
}

// NaturalSizeProber reads the intrinsic size of a source without decoding pixels
type NaturalSizeProber interface {
	ProbeNaturalSize(ctx context.Context, src Source) (Size, error)
}

//counterfeiter:generate -o ../../tests/mocks/domain/fake_clipboard_sink.go . ClipboardSink

// ClipboardSink accepts coordinate text
type ClipboardSink interface {
	WriteText(ctx context.Context, text string) error
}

//counterfeiter:generate -o ../../tests/mocks/domain/fake_notifier.go . Notifier

// Notifier is the transient feedback surface
type Notifier interface {
	Notify(message string)
	Ripple(entryID uint64, x, y float64)
}

//counterfeiter:generate -o ../../tests/mocks/domain/fake_event_publisher.go . EventPublisher

// EventPublisher fans gallery events out to connected views
type EventPublisher interface {
	Publish(event Event)
}
