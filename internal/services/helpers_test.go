package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/inference-gateway/coordpick/internal/domain"
	domainmocks "github.com/inference-gateway/coordpick/tests/mocks/domain"
)

// encodePNG returns a w×h PNG filled with c
func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type ripple struct {
	entryID uint64
	x, y    float64
}

func clipboardWrites(c *domainmocks.FakeClipboardSink) []string {
	writes := make([]string, 0, c.WriteTextCallCount())
	for i := range c.WriteTextCallCount() {
		_, text := c.WriteTextArgsForCall(i)
		writes = append(writes, text)
	}
	return writes
}

func toastMessages(n *domainmocks.FakeNotifier) []string {
	messages := make([]string, 0, n.NotifyCallCount())
	for i := range n.NotifyCallCount() {
		messages = append(messages, n.NotifyArgsForCall(i))
	}
	return messages
}

func ripples(n *domainmocks.FakeNotifier) []ripple {
	out := make([]ripple, 0, n.RippleCallCount())
	for i := range n.RippleCallCount() {
		id, x, y := n.RippleArgsForCall(i)
		out = append(out, ripple{entryID: id, x: x, y: y})
	}
	return out
}

func eventTypes(p *domainmocks.FakeEventPublisher) []domain.EventType {
	types := make([]domain.EventType, 0, p.PublishCallCount())
	for i := range p.PublishCallCount() {
		types = append(types, p.PublishArgsForCall(i).Type)
	}
	return types
}

// imageSource serves fixed bytes per ref; refs listed in gates block until released
type imageSource struct {
	data  map[string][]byte
	gates map[string]chan struct{}
}

func newImageSource() *imageSource {
	return &imageSource{
		data:  make(map[string][]byte),
		gates: make(map[string]chan struct{}),
	}
}

// resolver returns a fake whose Resolve is backed by s
func (s *imageSource) resolver() *domainmocks.FakeSourceResolver {
	fake := &domainmocks.FakeSourceResolver{}
	fake.ResolveStub = s.resolve
	return fake
}

func (s *imageSource) resolve(ctx context.Context, src domain.Source) ([]byte, error) {
	if len(src.Data) > 0 {
		return src.Data, nil
	}
	if gate, ok := s.gates[src.Ref]; ok {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	data, ok := s.data[src.Ref]
	if !ok {
		return nil, errNotFound
	}
	return data, nil
}

// fixedResolver serves data and answers errNotFound for every other ref
func fixedResolver(data map[string][]byte) *domainmocks.FakeSourceResolver {
	return (&imageSource{data: data}).resolver()
}

var errNotFound = errors.New("no such image")
