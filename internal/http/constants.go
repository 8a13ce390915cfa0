package httpx

import "time"

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
	StaticPathFromRoot   = "frontend/static"
	StaticPathFromTest   = "../../frontend/static"
)

// Cookie and header names.
const (
	VisitorCookieName = "lj_visitor"
	HeaderUserID      = "X-User-ID"

	visitorCookieMaxAge = 365 * 24 * time.Hour
)

// Page identifiers used by templates.
const (
	PageLanding  = "landing"
	PageNotFound = "not-found"
	PageError    = "error"
)
