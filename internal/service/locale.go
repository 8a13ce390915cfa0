package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/localjobs/localjobs-web/internal/core"
	"github.com/localjobs/localjobs-web/internal/i18n"
)

// ErrInvalidLocale is returned when a locale outside the supported set is selected.
var ErrInvalidLocale = errors.New("unsupported locale")

// LocaleServiceOptions groups dependencies for LocaleService.
type LocaleServiceOptions struct {
	Store         core.LocalePreferenceStore // Required
	Logger        *slog.Logger               // Optional
	DefaultLocale string                     // Optional: defaults to i18n.DefaultLocale
}

// LocaleService resolves and persists a visitor's language.
type LocaleService struct {
	store         core.LocalePreferenceStore
	logger        *slog.Logger
	defaultLocale string
}

// NewLocaleService constructs a LocaleService. It panics when Store is nil.
func NewLocaleService(opts LocaleServiceOptions) *LocaleService {
	if opts.Store == nil {
		panic("LocalePreferenceStore is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	def := i18n.Normalize(opts.DefaultLocale)
	if def == "" {
		def = i18n.DefaultLocale
	}
	return &LocaleService{
		store:         opts.Store,
		logger:        logger.With("component", "locale_service"),
		defaultLocale: def,
	}
}

// DefaultLocale returns the configured fallback locale.
func (s *LocaleService) DefaultLocale() string { return s.defaultLocale }

// Resolve picks the visitor's locale: a stored preference first, then the
// Accept-Language header, then the configured default. Store failures are logged
// and treated as "no preference".
func (s *LocaleService) Resolve(ctx context.Context, visitorID, acceptLanguage string) string {
	if strings.TrimSpace(visitorID) != "" {
		stored, ok, err := s.store.Get(ctx, visitorID)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "locale preference lookup failed", "visitor_id", visitorID, "error", err)
		case ok && i18n.Supported(stored):
			return stored
		}
	}
	if loc, ok := i18n.Match(acceptLanguage); ok {
		return loc
	}
	return s.defaultLocale
}

// Select validates locale and stores it as the visitor's preference.
// It returns the normalized locale code.
func (s *LocaleService) Select(ctx context.Context, visitorID, locale string) (string, error) {
	normalized := i18n.Normalize(locale)
	if normalized == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	if err := s.store.Set(ctx, visitorID, normalized); err != nil {
		s.logger.ErrorContext(ctx, "store locale preference failed", "visitor_id", visitorID, "error", err)
		return "", fmt.Errorf("store locale preference: %w", err)
	}
	return normalized, nil
}
