package web

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"
	"time"

	require "github.com/stretchr/testify/require"

	config "github.com/inference-gateway/coordpick/config"
	domain "github.com/inference-gateway/coordpick/internal/domain"
	geometry "github.com/inference-gateway/coordpick/internal/geometry"
	services "github.com/inference-gateway/coordpick/internal/services"
	domainmocks "github.com/inference-gateway/coordpick/tests/mocks/domain"
)

func clipboardWrites(c *domainmocks.FakeClipboardSink) []string {
	writes := make([]string, 0, c.WriteTextCallCount())
	for i := range c.WriteTextCallCount() {
		_, text := c.WriteTextArgsForCall(i)
		writes = append(writes, text)
	}
	return writes
}

type testEnv struct {
	cfg        *config.Config
	controller *services.GalleryController
	clipboard  *domainmocks.FakeClipboardSink
	hub        *Hub
	server     *GalleryServer
}

func newTestEnv(t *testing.T, mode string) *testEnv {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Gallery.Mode = mode
	cfg.Fetch.Cache.Enabled = false
	logical := domain.Size{Width: cfg.Gallery.Width, Height: cfg.Gallery.Height}

	normalizer, err := services.NewNormalizer(services.NewImageService(cfg.Fetch), cfg.Gallery)
	require.NoError(t, err)
	mapper, err := geometry.ForMode(normalizer.Mode(), logical)
	require.NoError(t, err)

	env := &testEnv{cfg: cfg, clipboard: &domainmocks.FakeClipboardSink{}}
	env.hub = NewHub(logical, func() GalleryView {
		return RenderGallery(env.controller.Mode(), env.controller.Entries(), logical)
	})

	notifier := services.NewNotifier(env.hub, time.Second, 100*time.Millisecond)
	t.Cleanup(notifier.Stop)

	env.controller, err = services.NewGalleryController(services.NewGallery(), normalizer, mapper, env.clipboard, notifier, env.hub)
	require.NoError(t, err)

	env.server, err = NewGalleryServer(cfg, env.controller, env.hub)
	require.NoError(t, err)

	t.Cleanup(func() {
		env.controller.Wait()
		env.hub.Close()
	})
	return env
}

func pngDataURL(t *testing.T, w, h int) string {
	t.Helper()
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, w, h))
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 200, A: 255}}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
