package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	corefuncs "github.com/localjobs/localjobs-web/internal/http/templates/core"
)

const fallbackCriticalCSS = ":root{--color-background:#f8fafc;--color-surface:#fff;--color-text-primary:#0f172a;}"

var templatePatterns = []string{"*.tmpl", "pages/*.tmpl", "partials/*.tmpl"}

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	mu            sync.RWMutex
	t             *template.Template
	templateFS    fs.FS
	criticalCSSFS fs.FS        // For hot reloading in dev mode
	criticalCSS   string       // Cached for production mode
	assetVersion  string       // Appended to static asset URLs
	devMode       bool         // Re-parse templates and CSS on each request
	logger        *slog.Logger // For logging template errors
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS    fs.FS        // Filesystem containing templates (required)
	CriticalCSSFS fs.FS        // Filesystem containing css/critical.css (optional)
	AssetVersion  string       // Cache-busting suffix for static URLs (optional)
	DevMode       bool         // Enable hot reloading of templates and critical CSS
	Logger        *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := &TemplateRenderer{
		templateFS:    cfg.TemplateFS,
		criticalCSSFS: cfg.CriticalCSSFS,
		assetVersion:  cfg.AssetVersion,
		devMode:       cfg.DevMode,
		logger:        logger,
	}
	if !cfg.DevMode {
		r.criticalCSS = r.loadCriticalCSS()
	}

	t, err := r.parse()
	if err != nil {
		logger.Error("template parsing failed", slog.Any("error", err), slog.String("phase", "initialization"))
		return nil, err
	}
	r.t = t
	return r, nil
}

func (r *TemplateRenderer) parse() (*template.Template, error) {
	return template.New("root").Funcs(r.funcs()).ParseFS(r.templateFS, templatePatterns...)
}

func (r *TemplateRenderer) funcs() template.FuncMap {
	funcs := corefuncs.Funcs()
	funcs["asset"] = func(name string) string {
		if r.assetVersion == "" {
			return "/static/" + name
		}
		return "/static/" + name + "?v=" + r.assetVersion
	}
	funcs["criticalCSS"] = func() template.CSS {
		// #nosec G203 - critical CSS comes from our own static files
		return template.CSS(r.getCriticalCSS())
	}
	return funcs
}

func (r *TemplateRenderer) loadCriticalCSS() string {
	if r.criticalCSSFS == nil {
		return ""
	}
	b, err := fs.ReadFile(r.criticalCSSFS, "css/critical.css")
	if err != nil {
		r.logger.Warn("failed to load critical CSS", "error", err)
		return fallbackCriticalCSS
	}
	return string(b)
}

// getCriticalCSS returns the critical CSS, reloading from disk in dev mode.
func (r *TemplateRenderer) getCriticalCSS() string {
	if r.devMode {
		return r.loadCriticalCSS()
	}
	return r.criticalCSS
}

// current returns the parsed set, re-parsing in dev mode so edits show without a restart.
func (r *TemplateRenderer) current() *template.Template {
	if r.devMode {
		if t, err := r.parse(); err == nil {
			r.mu.Lock()
			r.t = t
			r.mu.Unlock()
		} else {
			r.logger.Warn("template reload failed, serving previous set", "error", err)
		}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.t
}

// RenderPage renders the full layout with the given data and status code.
func (r *TemplateRenderer) RenderPage(w http.ResponseWriter, status int, data any) error {
	return r.renderTemplate(w, status, "layout", data)
}

// RenderError renders the standalone error page.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, status int, data any) error {
	return r.renderTemplate(w, status, "error-layout", data)
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.current().ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("template execution failed", slog.String("template", name), slog.Any("error", err))
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error("failed to write rendered template", slog.String("template", name), slog.Any("error", err))
		return err
	}
	return nil
}
