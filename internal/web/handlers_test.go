package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	config "github.com/inference-gateway/coordpick/config"
	domain "github.com/inference-gateway/coordpick/internal/domain"
)

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func addImage(t *testing.T, env *testEnv, ref string) CardView {
	t.Helper()

	rec := doJSON(t, env.server.Handler(), http.MethodPost, "/api/images?wait=true", map[string]string{"url": ref})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp submitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Card)
	return *resp.Card
}

func clickBody(x, y float64) map[string]any {
	return map[string]any{
		"client_x": x,
		"client_y": y,
		"box":      map[string]float64{"left": 100, "top": 50, "width": 960, "height": 540},
	}
}

func TestGalleryServer_Index(t *testing.T) {
	env := newTestEnv(t, config.ModeCanonical)

	rec := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-mode="canonical"`)
	assert.Contains(t, rec.Body.String(), "1920x1080")
	assert.Contains(t, rec.Body.String(), `data-toast-ms="2500"`)
}

func TestGalleryServer_Static(t *testing.T) {
	env := newTestEnv(t, config.ModeCanonical)

	for _, path := range []string{"/static/app.js", "/static/style.css"} {
		rec := httptest.NewRecorder()
		env.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGalleryServer_Health(t *testing.T) {
	env := newTestEnv(t, config.ModeCanonical)

	rec := doJSON(t, env.server.Handler(), http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestGalleryServer_SubmitURL(t *testing.T) {
	env := newTestEnv(t, config.ModeCanonical)
	h := env.server.Handler()

	t.Run("blank url is rejected", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/images", map[string]string{"url": "   "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/images", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-json body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/images", strings.NewReader(`{"url":"https://example.com/a.png"}`))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Equal(t, 0, env.controller.Gallery().Len())
	})

	t.Run("local paths are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secret.png")
		require.NoError(t, os.WriteFile(path, pngBytes(t, 2, 2), 0o600))

		for _, ref := range []string{path, "file://" + path} {
			rec := doJSON(t, h, http.MethodPost, "/api/images?wait=true", map[string]string{"url": ref})
			assert.Equal(t, http.StatusBadRequest, rec.Code, ref)
		}
		assert.Equal(t, 0, env.controller.Gallery().Len())
	})

	t.Run("cross-origin submission is rejected", func(t *testing.T) {
		body := strings.NewReader(fmt.Sprintf(`{"url":%q}`, pngDataURL(t, 2, 2)))
		req := httptest.NewRequest(http.MethodPost, "/api/images?wait=true", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "https://attacker.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 0, env.controller.Gallery().Len())
	})

	t.Run("accepted without waiting", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/images", map[string]string{"url": pngDataURL(t, 4, 2)})
		assert.Equal(t, http.StatusAccepted, rec.Code)
		env.controller.Wait()
	})

	t.Run("load failure is reported when waiting", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/images?wait=true", map[string]string{"url": "data:image/png;base64,AAAA"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("added entry is listed", func(t *testing.T) {
		card := addImage(t, env, pngDataURL(t, 8, 8))
		assert.Equal(t, fmt.Sprintf("/api/images/%d/source", card.ID), card.ImageURL)
		assert.Contains(t, card.Caption, "1920x1080")

		rec := doJSON(t, h, http.MethodGet, "/api/images", nil)
		var view GalleryView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.False(t, view.Empty)
		assert.Equal(t, card.ID, view.Cards[len(view.Cards)-1].ID)
	})
}

func TestGalleryServer_Upload(t *testing.T) {
	env := newTestEnv(t, config.ModeCanonical)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "shot.png")
	require.NoError(t, err)

	_, err = part.Write(pngBytes(t, 3, 3))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images/upload?wait=true", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	env.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/images/upload", strings.NewReader(""))
		rec := httptest.NewRecorder()
		env.server.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGalleryServer_Source(t *testing.T) {
	t.Run("canonical entries serve the normalized PNG", func(t *testing.T) {
		env := newTestEnv(t, config.ModeCanonical)
		card := addImage(t, env, pngDataURL(t, 4, 2))

		rec := doJSON(t, env.server.Handler(), http.MethodGet, card.ImageURL, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})

	t.Run("deferred url entries redirect to the source", func(t *testing.T) {
		env := newTestEnv(t, config.ModeDeferred)
		ref := "http://127.0.0.1:1/photo.png"
		card := addImage(t, env, ref)

		rec := doJSON(t, env.server.Handler(), http.MethodGet, card.ImageURL, nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, ref, rec.Header().Get("Location"))
	})

	t.Run("unknown entry", func(t *testing.T) {
		env := newTestEnv(t, config.ModeCanonical)
		rec := doJSON(t, env.server.Handler(), http.MethodGet, "/api/images/99/source", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv(t, config.ModeCanonical)
		rec := doJSON(t, env.server.Handler(), http.MethodGet, "/api/images/abc/source", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGalleryServer_Click(t *testing.T) {
	t.Run("canonical click is mapped and copied", func(t *testing.T) {
		env := newTestEnv(t, config.ModeCanonical)
		card := addImage(t, env, pngDataURL(t, 4, 2))
		path := fmt.Sprintf("/api/images/%d/click", card.ID)

		rec := doJSON(t, env.server.Handler(), http.MethodPost, path, clickBody(580, 320))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp clickResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, clickResponse{X: 960, Y: 540, Text: "960, 540", Copied: true}, resp)
		assert.Equal(t, []string{"960, 540"}, clipboardWrites(env.clipboard))
	})

	t.Run("failed copy is reported so the page can copy", func(t *testing.T) {
		env := newTestEnv(t, config.ModeCanonical)
		env.clipboard.WriteTextReturns(&domain.ClipboardWriteError{Text: "960, 540", Err: errors.New("no display")})
		card := addImage(t, env, pngDataURL(t, 4, 2))
		path := fmt.Sprintf("/api/images/%d/click", card.ID)

		rec := doJSON(t, env.server.Handler(), http.MethodPost, path, clickBody(580, 320))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp clickResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, clickResponse{X: 960, Y: 540, Text: "960, 540", Copied: false}, resp)
		assert.Equal(t, 1, env.clipboard.WriteTextCallCount())
	})

	t.Run("deferred click without natural size has no effect", func(t *testing.T) {
		env := newTestEnv(t, config.ModeDeferred)
		card := addImage(t, env, "http://127.0.0.1:1/photo.png")
		env.controller.Wait()

		path := fmt.Sprintf("/api/images/%d/click", card.ID)
		rec := doJSON(t, env.server.Handler(), http.MethodPost, path, clickBody(580, 320))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, clipboardWrites(env.clipboard))
	})

	t.Run("deferred click after natural size is known", func(t *testing.T) {
		env := newTestEnv(t, config.ModeDeferred)
		card := addImage(t, env, pngDataURL(t, 3840, 2160))
		env.controller.Wait()

		path := fmt.Sprintf("/api/images/%d/click", card.ID)
		rec := doJSON(t, env.server.Handler(), http.MethodPost, path, clickBody(100, 50))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp clickResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "0, 0", resp.Text)
	})

	t.Run("unknown entry", func(t *testing.T) {
		env := newTestEnv(t, config.ModeCanonical)
		rec := doJSON(t, env.server.Handler(), http.MethodPost, "/api/images/7/click", clickBody(1, 1))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newTestEnv(t, config.ModeCanonical)
		card := addImage(t, env, pngDataURL(t, 2, 2))
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/images/%d/click", card.ID), strings.NewReader("nope"))
		rec := httptest.NewRecorder()
		env.server.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
