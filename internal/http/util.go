package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/localjobs/localjobs-web/internal/data"
	apperrors "github.com/localjobs/localjobs-web/internal/errors"
	"github.com/localjobs/localjobs-web/internal/service"
	"github.com/localjobs/localjobs-web/internal/service/carousel"
)

var errStoreUnavailable = errors.New("notification store is unavailable, try again")

// writeServiceError maps store and service errors onto API responses.
// fallback is the error code used for anything unclassified (500).
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, data.ErrNotificationNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "notification_not_found", Err: err})
	case errors.Is(err, data.ErrStoreUnavailable), apperrors.IsUnavailable(err):
		w.Header().Set("Retry-After", "5")
		WriteError(w, ErrorParams{
			Code:    http.StatusServiceUnavailable,
			ErrCode: "store_unavailable",
			Err:     errStoreUnavailable,
		})
	case errors.Is(err, carousel.ErrIndexOutOfRange):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_index", Err: err})
	case service.IsInvalidArgument(err):
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation_failed",
			Err:     err,
			Field:   apperrors.GetField(err),
		})
	case errors.Is(err, context.DeadlineExceeded), apperrors.IsTimeout(err):
		WriteError(w, ErrorParams{Code: http.StatusGatewayTimeout, ErrCode: "timeout", Err: err})
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: fallback,
			Err:     errors.New(http.StatusText(http.StatusInternalServerError)),
		})
	}
}

// userIDFromRequest returns the acting user id from the user_id query parameter
// or the X-User-ID header.
func userIDFromRequest(r *http.Request) string {
	if v := strings.TrimSpace(r.URL.Query().Get("user_id")); v != "" {
		return v
	}
	return strings.TrimSpace(r.Header.Get(HeaderUserID))
}

// wantsJSON reports whether the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// safeRedirectPath keeps redirects on this site: only absolute paths, never "//host".
func safeRedirectPath(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.IsAbs() || u.Host != "" {
		return safeRedirectPath(u.RequestURI())
	}
	p := u.RequestURI()
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return ""
	}
	return p
}
