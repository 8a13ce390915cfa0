// Package localjobs provides embedded assets for production builds.
package localjobs

import "embed"

// In dev mode (IsDev=true), templates and static files are read from disk for hot reloading.
// In production mode they are served from these embedded filesystems.

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
