package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	localjobs "github.com/localjobs/localjobs-web"
	"github.com/localjobs/localjobs-web/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Landing       *service.LandingService      // Required
	Locales       *service.LocaleService       // Required
	Rotation      *service.TestimonialRotation // Required
	Notifications *service.NotificationService // Optional: enables /api/notifications
	HealthChecks  map[string]HealthCheck       // Optional: dependency probes for /healthz
	Visitor       VisitorConfig
	AssetVersion  string
	IsDev         bool         // Serve templates and static files from disk
	TemplateFS    fs.FS        // Optional override, e.g. os.DirFS in tests
	StaticFS      fs.FS        // Optional override
	Logger        *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates the HTTP router for the site and its JSON API.
func NewRouter(services RouterServices) (http.Handler, error) {
	if services.Landing == nil || services.Locales == nil || services.Rotation == nil {
		return nil, errors.New("landing, locale and rotation services are required")
	}
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	templateFS, staticFS, err := resolveFS(services)
	if err != nil {
		return nil, err
	}
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS:    templateFS,
		CriticalCSSFS: staticFS,
		AssetVersion:  services.AssetVersion,
		DevMode:       services.IsDev,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}

	landing := &LandingHandlers{
		Landing:  services.Landing,
		Locales:  services.Locales,
		Renderer: renderer,
		Logger:   logger,
	}
	carousel := &CarouselHandlers{Rotation: services.Rotation, Logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", landing.Page)
	mux.HandleFunc("POST /locale", landing.SelectLocale)
	mux.HandleFunc("GET /go/{target}", landing.Navigate)
	mux.HandleFunc("GET /api/i18n/{locale}", landing.Catalog)

	mux.HandleFunc("GET /api/carousel", carousel.Current)
	mux.HandleFunc("POST /api/carousel/next", carousel.Next)
	mux.HandleFunc("POST /api/carousel/prev", carousel.Previous)
	mux.HandleFunc("POST /api/carousel/jump/{index}", carousel.Jump)

	if services.Notifications != nil {
		registerNotificationRoutes(mux, &NotificationHandlers{Svc: services.Notifications, Logger: logger})
	}

	health := healthHandler(services.HealthChecks)
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)

	mux.Handle("GET /static/", staticHandler(staticFS, services.IsDev))

	handler := &notFoundHandler{mux: mux, notFound: landing.NotFound}
	return Visitor(services.Visitor)(handler), nil
}

func registerNotificationRoutes(mux *http.ServeMux, h *NotificationHandlers) {
	mux.HandleFunc("GET /api/notifications", h.List)
	mux.HandleFunc("POST /api/notifications", h.Create)
	mux.HandleFunc("POST /api/notifications/{id}/read", h.MarkRead)
	mux.HandleFunc("POST /api/notifications/{id}/unread", h.MarkUnread)
}

// resolveFS picks template and static filesystems: explicit overrides first, then the
// working tree in dev mode, then the embedded copies.
func resolveFS(services RouterServices) (fs.FS, fs.FS, error) {
	templateFS, staticFS := services.TemplateFS, services.StaticFS

	if templateFS == nil {
		if services.IsDev {
			templateFS = os.DirFS(TemplatePathFromRoot)
		} else {
			sub, err := fs.Sub(localjobs.TemplateFS, TemplatePathFromRoot)
			if err != nil {
				return nil, nil, fmt.Errorf("embedded templates: %w", err)
			}
			templateFS = sub
		}
	}

	if staticFS == nil {
		if services.IsDev {
			staticFS = os.DirFS(StaticPathFromRoot)
		} else {
			sub, err := fs.Sub(localjobs.StaticFS, StaticPathFromRoot)
			if err != nil {
				return nil, nil, fmt.Errorf("embedded static assets: %w", err)
			}
			staticFS = sub
		}
	}

	return templateFS, staticFS, nil
}

// staticHandler serves /static/* with cache headers. Versioned URLs (?v=) are immutable;
// dev mode disables caching so edits show immediately.
func staticHandler(staticFS fs.FS, isDev bool) http.Handler {
	files := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case isDev:
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		case r.URL.Query().Get("v") != "":
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		default:
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		files.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and renders the site's 404 page for unmatched routes.
type notFoundHandler struct {
	mux      *http.ServeMux
	notFound http.HandlerFunc
}

// ServeHTTP implements http.Handler. Only requests without a matching pattern are buffered,
// so 405 responses from the mux pass through unchanged.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, pattern := h.mux.Handler(r); pattern != "" {
		h.mux.ServeHTTP(w, r)
		return
	}

	cw := newCaptureWriter()
	h.mux.ServeHTTP(cw, r)
	if cw.status == http.StatusNotFound {
		h.notFound(w, r)
		return
	}
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vv := range c.header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	_, _ = c.buf.WriteTo(w)
}
