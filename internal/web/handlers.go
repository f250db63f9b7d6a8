package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	domain "github.com/inference-gateway/coordpick/internal/domain"
	geometry "github.com/inference-gateway/coordpick/internal/geometry"
	logger "github.com/inference-gateway/coordpick/internal/logger"
	services "github.com/inference-gateway/coordpick/internal/services"
)

type submitURLRequest struct {
	URL string `json:"url"`
}

type submitResponse struct {
	Status string    `json:"status"`
	Card   *CardView `json:"card,omitempty"`
	Error  string    `json:"error,omitempty"`
}

type clickRequest struct {
	geometry.Click
	Box geometry.Box `json:"box"`
}

type clickResponse struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Text   string `json:"text"`
	Copied bool   `json:"copied"`
}

func (s *GalleryServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Title   string
		Mode    domain.Mode
		Logical domain.Size
		ToastMs int
	}{
		Title:   "Coordinate Picker",
		Mode:    s.controller.Mode(),
		Logical: s.logical,
		ToastMs: s.cfg.Notify.ToastMillis,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, data); err != nil {
		logger.Error("Failed to execute template", "error", err)
	}
}

func (s *GalleryServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"entries": len(s.controller.Entries()),
		"clients": s.hub.ClientCount(),
	})
}

func (s *GalleryServer) handleListImages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.View())
}

func (s *GalleryServer) handleSubmitURL(w http.ResponseWriter, r *http.Request) {
	var req submitURLRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := s.controller.SubmitURL(r.Context(), req.URL)
	s.respondSubmission(w, r, results, err)
}

func (s *GalleryServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Web.MaxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Warn("Failed to close upload", "error", err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "failed to read upload")
		return
	}

	results, err := s.controller.SubmitFile(r.Context(), header.Filename, data)
	s.respondSubmission(w, r, results, err)
}

// respondSubmission answers 202 right away, or waits for the add with ?wait=true
func (s *GalleryServer) respondSubmission(w http.ResponseWriter, r *http.Request, results <-chan domain.AddResult, err error) {
	if errors.Is(err, services.ErrEmptySource) || errors.Is(err, services.ErrUnsupportedSource) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); !wait {
		writeJSON(w, http.StatusAccepted, submitResponse{Status: "pending"})
		return
	}

	select {
	case res := <-results:
		switch {
		case res.Err != nil:
			writeJSON(w, http.StatusUnprocessableEntity, submitResponse{Status: "failed", Error: res.Err.Error()})
		case res.Dropped:
			writeJSON(w, http.StatusConflict, submitResponse{Status: "dropped"})
		default:
			card := RenderCard(*res.Entry, s.logical)
			writeJSON(w, http.StatusCreated, submitResponse{Status: "added", Card: &card})
		}
	case <-r.Context().Done():
	}
}

func (s *GalleryServer) handleSource(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	entry, found := s.controller.Entry(id)
	if !found {
		writeError(w, http.StatusNotFound, domain.ErrEntryNotFound.Error())
		return
	}

	src := entry.Source
	if len(src.Data) == 0 {
		if services.ClassifyRef(src.Ref) == domain.SourceURL {
			http.Redirect(w, r, src.Ref, http.StatusFound)
			return
		}
		writeError(w, http.StatusNotFound, "source not available")
		return
	}

	mimeType := src.MimeType
	if mimeType == "" {
		mimeType = http.DetectContentType(src.Data)
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "private, max-age=31536000, immutable")
	_, _ = w.Write(src.Data)
}

func (s *GalleryServer) handleClick(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	var req clickRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.controller.HandleClick(r.Context(), id, req.Click, req.Box)
	switch {
	case errors.Is(err, domain.ErrMappingUnavailable):
		w.WriteHeader(http.StatusNoContent)
		return
	case errors.Is(err, domain.ErrEntryNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, clickResponse{
		X:      result.Point.X,
		Y:      result.Point.Y,
		Text:   result.Text,
		Copied: result.Copied,
	})
}

func entryID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
