package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	config "github.com/inference-gateway/coordpick/config"
	constants "github.com/inference-gateway/coordpick/internal/constants"
	domain "github.com/inference-gateway/coordpick/internal/domain"
	geometry "github.com/inference-gateway/coordpick/internal/geometry"
	logger "github.com/inference-gateway/coordpick/internal/logger"
	services "github.com/inference-gateway/coordpick/internal/services"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed templates/*
var templates embed.FS

// Controller is the gallery surface the HTTP layer drives
type Controller interface {
	Mode() domain.Mode
	SubmitURL(ctx context.Context, ref string) (<-chan domain.AddResult, error)
	SubmitFile(ctx context.Context, name string, data []byte) (<-chan domain.AddResult, error)
	HandleClick(ctx context.Context, entryID uint64, click geometry.Click, box geometry.Box) (*services.ClickResult, error)
	Entries() []domain.GalleryEntry
	Entry(id uint64) (domain.GalleryEntry, bool)
}

// GalleryServer serves the gallery page, its JSON API and the event stream
type GalleryServer struct {
	cfg        *config.Config
	controller Controller
	hub        *Hub
	logical    domain.Size
	index      *template.Template
	router     chi.Router
	server     *http.Server
}

// NewGalleryServer creates the server and its routes
func NewGalleryServer(cfg *config.Config, controller Controller, hub *Hub) (*GalleryServer, error) {
	index, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	s := &GalleryServer{
		cfg:        cfg,
		controller: controller,
		hub:        hub,
		logical:    domain.Size{Width: cfg.Gallery.Width, Height: cfg.Gallery.Height},
		index:      index,
	}

	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GalleryServer) routes() error {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to create static filesystem: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(http.NewCrossOriginProtection().Handler)

	r.Get("/", s.handleIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	r.Get("/ws", s.hub.HandleWebSocket)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Route("/images", func(r chi.Router) {
			r.Get("/", s.handleListImages)
			r.With(middleware.AllowContentType("application/json")).Post("/", s.handleSubmitURL)
			r.Post("/upload", s.handleUpload)
			r.Get("/{id}/source", s.handleSource)
			r.Post("/{id}/click", s.handleClick)
		})
	})

	s.router = r
	return nil
}

// Handler exposes the router, mainly for tests
func (s *GalleryServer) Handler() http.Handler {
	return s.router
}

// Serve accepts connections on l until Shutdown is called
func (s *GalleryServer) Serve(l net.Listener) error {
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	logger.Info("Gallery server started", "url", fmt.Sprintf("http://%s", l.Addr()))

	if err := s.server.Serve(l); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown closes event streams and stops the HTTP server
func (s *GalleryServer) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// View renders the current gallery projection
func (s *GalleryServer) View() GalleryView {
	return RenderGallery(s.controller.Mode(), s.controller.Entries(), s.logical)
}

// requestLogger tags the request context with the chi request id for zap
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequest(r.Context(), middleware.GetReqID(r.Context()))
		logger.Debug("HTTP request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
