package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/localjobs/localjobs-web/internal/domain/model"
	"github.com/localjobs/localjobs-web/internal/i18n"
)

// unreadCounter is the slice of NotificationService the landing page needs.
type unreadCounter interface {
	UnreadCount(ctx context.Context, userID string) (int, error)
}

// LandingServiceOptions groups dependencies for LandingService.
type LandingServiceOptions struct {
	Locales       *LocaleService       // Required
	Rotation      *TestimonialRotation // Required
	Notifications unreadCounter        // Optional: enables the unread badge
	Logger        *slog.Logger         // Optional
}

// PageRequest carries everything the landing page depends on from the request.
type PageRequest struct {
	VisitorID      string
	UserID         string // optional, enables the unread badge
	AcceptLanguage string
	Lang           string // explicit override, e.g. from ?lang=
}

// LocaleOption is one entry of the language picker.
type LocaleOption struct {
	Code   string
	Label  string
	Active bool
}

// LandingPage is the view model for the landing page.
type LandingPage struct {
	Locale             string
	Translator         i18n.Translator
	Locales            []LocaleOption
	Steps              []model.Step
	Categories         []model.Category
	FeaturedJobs       []model.FeaturedJob
	Testimonials       []model.Testimonial
	Carousel           CarouselState
	CarouselIntervalMs int64
	UnreadCount        int
	ShowUnread         bool
}

// T translates key for the page locale.
func (p *LandingPage) T(key string) string { return p.Translator.T(key) }

// LandingService composes the landing page.
type LandingService struct {
	locales       *LocaleService
	rotation      *TestimonialRotation
	notifications unreadCounter
	logger        *slog.Logger
}

// NewLandingService constructs a LandingService. It panics when a required dependency is nil.
func NewLandingService(opts LandingServiceOptions) *LandingService {
	if opts.Locales == nil {
		panic("LocaleService is required")
	}
	if opts.Rotation == nil {
		panic("TestimonialRotation is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &LandingService{
		locales:       opts.Locales,
		rotation:      opts.Rotation,
		notifications: opts.Notifications,
		logger:        logger.With("component", "landing_service"),
	}
}

// Page builds the landing page. The locale and the unread count are fetched concurrently;
// a failing unread count hides the badge instead of failing the page.
func (s *LandingService) Page(ctx context.Context, req PageRequest) (*LandingPage, error) {
	var (
		locale string
		unread int
		show   bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if lang := i18n.Normalize(req.Lang); lang != "" {
			locale = lang
			return nil
		}
		locale = s.locales.Resolve(gctx, req.VisitorID, req.AcceptLanguage)
		return nil
	})

	userID := strings.TrimSpace(req.UserID)
	if userID != "" && s.notifications != nil {
		g.Go(func() error {
			n, err := s.notifications.UnreadCount(gctx, userID)
			if err != nil {
				s.logger.WarnContext(gctx, "unread count unavailable", "user_id", userID, "error", err)
				return nil
			}
			unread, show = n, true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build landing page: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &LandingPage{
		Locale:             locale,
		Translator:         i18n.New(locale),
		Locales:            localeOptions(locale),
		Steps:              DefaultSteps(),
		Categories:         DefaultCategories(),
		FeaturedJobs:       DefaultFeaturedJobs(),
		Testimonials:       s.rotation.Testimonials(),
		Carousel:           s.rotation.Current(),
		CarouselIntervalMs: s.rotation.Interval().Milliseconds(),
		UnreadCount:        unread,
		ShowUnread:         show,
	}, nil
}

func localeOptions(active string) []LocaleOption {
	codes := i18n.Locales()
	out := make([]LocaleOption, 0, len(codes))
	for _, code := range codes {
		out = append(out, LocaleOption{Code: code, Label: i18n.DisplayName(code), Active: code == active})
	}
	return out
}
