// Package httpx provides the HTTP handlers, middleware and router for the localjobs site.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/localjobs/localjobs-web/internal/domain/model"
	"github.com/localjobs/localjobs-web/internal/i18n"
	"github.com/localjobs/localjobs-web/internal/service"
)

// LandingHandlers serves the landing page and its language and navigation endpoints.
type LandingHandlers struct {
	Landing  *service.LandingService
	Locales  *service.LocaleService
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

// pageView is the template data for a full page.
type pageView struct {
	*service.LandingPage
	CurrentPage string
	Year        int
}

// errorView is the template data for the error page.
type errorView struct {
	Status  int
	Title   string
	Message string
	Locale  string
}

type selectLocaleRequest struct {
	Locale   string `json:"locale"`
	Redirect string `json:"redirect,omitempty"`
}

// Page handles GET /.
func (h *LandingHandlers) Page(w http.ResponseWriter, r *http.Request) {
	page, err := h.Landing.Page(r.Context(), service.PageRequest{
		VisitorID:      VisitorIDFromContext(r.Context()),
		UserID:         userIDFromRequest(r),
		AcceptLanguage: r.Header.Get("Accept-Language"),
		Lang:           r.URL.Query().Get("lang"),
	})
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "build landing page failed", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, "Something went wrong", "Please try again in a moment.")
		return
	}

	w.Header().Set("Content-Language", page.Locale)
	w.Header().Add("Vary", "Accept-Language")
	view := pageView{LandingPage: page, CurrentPage: PageLanding, Year: time.Now().Year()}
	if err := h.Renderer.RenderPage(w, http.StatusOK, view); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// SelectLocale handles POST /locale from the language picker (form) or from scripts (JSON).
func (h *LandingHandlers) SelectLocale(w http.ResponseWriter, r *http.Request) {
	asJSON := wantsJSON(r)

	var req selectLocaleRequest
	if asJSON {
		if !DecodeJSON(w, r, &req) {
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
			return
		}
		req.Locale = r.PostForm.Get("locale")
		req.Redirect = r.PostForm.Get("redirect")
	}

	visitorID := VisitorIDFromContext(r.Context())
	if visitorID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "visitor_required",
			Err:     errors.New("visitor cookie is required to store a language"),
		})
		return
	}

	locale, err := h.Locales.Select(r.Context(), visitorID, req.Locale)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLocale) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unsupported_locale", Err: err, Field: "locale"})
			return
		}
		writeServiceError(w, r, h.Logger, err, "locale_failed")
		return
	}

	if asJSON {
		WriteJSON(w, http.StatusOK, map[string]string{"locale": locale})
		return
	}

	target := safeRedirectPath(req.Redirect)
	if target == "" {
		target = safeRedirectPath(r.Referer())
	}
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Navigate handles GET /go/{target} by redirecting to the named destination.
func (h *LandingHandlers) Navigate(w http.ResponseWriter, r *http.Request) {
	target, ok := model.ParseNavTarget(r.PathValue("target"))
	if !ok {
		h.NotFound(w, r)
		return
	}
	path, _ := target.Path()
	http.Redirect(w, r, path, http.StatusFound)
}

// Catalog handles GET /api/i18n/{locale}.
func (h *LandingHandlers) Catalog(w http.ResponseWriter, r *http.Request) {
	locale := i18n.Normalize(r.PathValue("locale"))
	if locale == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "locale_not_found",
			Err:     errors.New("locale must be one of: " + strings.Join(i18n.Locales(), ", ")),
		})
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=300")
	WriteJSON(w, http.StatusOK, map[string]any{
		"locale":   locale,
		"name":     i18n.DisplayName(locale),
		"messages": i18n.Catalog(locale),
	})
}

// NotFound renders the 404 page for browsers and a JSON error for API clients.
func (h *LandingHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") || wantsJSON(r) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("resource not found")})
		return
	}
	h.renderError(w, r, http.StatusNotFound, "Page not found", "The page you are looking for does not exist.")
}

func (h *LandingHandlers) renderError(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	locale := i18n.Normalize(r.URL.Query().Get("lang"))
	if locale == "" {
		locale = i18n.DefaultLocale
	}
	view := errorView{Status: status, Title: title, Message: message, Locale: locale}
	if h.Renderer == nil || h.Renderer.RenderError(w, status, view) != nil {
		http.Error(w, title, status)
	}
}
