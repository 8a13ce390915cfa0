package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/localjobs/localjobs-web/internal/data"
	"github.com/localjobs/localjobs-web/internal/i18n"
	"github.com/localjobs/localjobs-web/internal/mocks"
)

type stubUnread struct {
	n   int
	err error
}

func (s stubUnread) UnreadCount(context.Context, string) (int, error) { return s.n, s.err }

func newLandingService(t *testing.T, notifications unreadCounter) (*LandingService, *mocks.MockLocalePreferenceStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLocalePreferenceStore(ctrl)

	rotation, err := NewTestimonialRotation(TestimonialRotationOptions{
		Testimonials: DefaultTestimonials(),
		Cache:        data.NewMemoryCacheRepo(),
	})
	require.NoError(t, err)
	t.Cleanup(rotation.Close)

	svc := NewLandingService(LandingServiceOptions{
		Locales:       NewLocaleService(LocaleServiceOptions{Store: store}),
		Rotation:      rotation,
		Notifications: notifications,
	})
	return svc, store
}

func TestNewLandingService_RequiredDependencies(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewLandingService(LandingServiceOptions{}) })
}

func TestLandingService_Page(t *testing.T) {
	t.Parallel()

	t.Run("explicit lang overrides preference", func(t *testing.T) {
		t.Parallel()
		svc, _ := newLandingService(t, nil)

		page, err := svc.Page(context.Background(), PageRequest{VisitorID: "v1", Lang: "hi"})
		require.NoError(t, err)

		assert.Equal(t, i18n.Hindi, page.Locale)
		assert.Equal(t, "हिन्दी", localeLabel(page.Locales, i18n.Hindi))
		assert.Equal(t, i18n.New(i18n.Hindi).T("hero.title"), page.T("hero.title"))
		assert.False(t, page.ShowUnread)
	})

	t.Run("stored preference", func(t *testing.T) {
		t.Parallel()
		svc, store := newLandingService(t, nil)
		store.EXPECT().Get(gomock.Any(), "v1").Return(i18n.Bengali, true, nil)

		page, err := svc.Page(context.Background(), PageRequest{VisitorID: "v1", AcceptLanguage: "en"})
		require.NoError(t, err)
		assert.Equal(t, i18n.Bengali, page.Locale)

		active := 0
		for _, opt := range page.Locales {
			if opt.Active {
				active++
				assert.Equal(t, i18n.Bengali, opt.Code)
			}
		}
		assert.Equal(t, 1, active)
	})

	t.Run("static sections", func(t *testing.T) {
		t.Parallel()
		svc, _ := newLandingService(t, nil)

		page, err := svc.Page(context.Background(), PageRequest{})
		require.NoError(t, err)

		assert.Equal(t, i18n.English, page.Locale)
		assert.Len(t, page.Steps, 3)
		assert.Len(t, page.Categories, 4)
		assert.Len(t, page.FeaturedJobs, 3)
		assert.Len(t, page.Testimonials, 5)
		assert.Equal(t, 0, page.Carousel.Index)
		assert.Equal(t, DefaultRotationInterval.Milliseconds(), page.CarouselIntervalMs)
	})

	t.Run("unread badge", func(t *testing.T) {
		t.Parallel()
		svc, _ := newLandingService(t, stubUnread{n: 3})

		page, err := svc.Page(context.Background(), PageRequest{UserID: "u1"})
		require.NoError(t, err)
		assert.True(t, page.ShowUnread)
		assert.Equal(t, 3, page.UnreadCount)
	})

	t.Run("unread failure hides badge", func(t *testing.T) {
		t.Parallel()
		svc, _ := newLandingService(t, stubUnread{err: errors.New("store down")})

		page, err := svc.Page(context.Background(), PageRequest{UserID: "u1"})
		require.NoError(t, err)
		assert.False(t, page.ShowUnread)
		assert.Zero(t, page.UnreadCount)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		svc, _ := newLandingService(t, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.Page(ctx, PageRequest{})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func localeLabel(opts []LocaleOption, code string) string {
	for _, o := range opts {
		if o.Code == code {
			return o.Label
		}
	}
	return ""
}
