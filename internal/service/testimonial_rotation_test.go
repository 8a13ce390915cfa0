package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/localjobs/localjobs-web/internal/data"
	"github.com/localjobs/localjobs-web/internal/domain/model"
	"github.com/localjobs/localjobs-web/internal/mocks"
	"github.com/localjobs/localjobs-web/internal/observability/statsd"
	"github.com/localjobs/localjobs-web/internal/service/carousel"
)

type manualTicker struct {
	ch chan time.Time
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               {}

func newRotation(t *testing.T, cache *data.MemoryCacheRepo) (*TestimonialRotation, chan *manualTicker) {
	t.Helper()
	tickers := make(chan *manualTicker, 4)
	r, err := NewTestimonialRotation(TestimonialRotationOptions{
		Testimonials: DefaultTestimonials(),
		Cache:        cache,
		Config: TestimonialRotationConfig{
			Interval: time.Second,
			NewTicker: func(time.Duration) carousel.Ticker {
				tk := &manualTicker{ch: make(chan time.Time)}
				tickers <- tk
				return tk
			},
		},
	})
	require.NoError(t, err)
	t.Cleanup(r.Close)
	return r, tickers
}

func storedCursor(t *testing.T, cache *data.MemoryCacheRepo) string {
	t.Helper()
	raw, err := cache.Get(context.Background(), testimonialCursorKey)
	require.NoError(t, err)
	return string(raw)
}

func TestNewTestimonialRotation_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewTestimonialRotation(TestimonialRotationOptions{})
	require.Error(t, err)

	_, err = NewTestimonialRotation(TestimonialRotationOptions{
		Testimonials: []model.Testimonial{{ID: "1", Name: "A", Rating: 6}},
	})
	require.Error(t, err)

	_, err = NewTestimonialRotation(TestimonialRotationOptions{
		Testimonials: []model.Testimonial{{ID: "1", Name: "A"}, {ID: "1", Name: "B"}},
	})
	require.Error(t, err)
}

func TestTestimonialRotation_Navigation(t *testing.T) {
	t.Parallel()
	cache := data.NewMemoryCacheRepo()
	r, _ := newRotation(t, cache)

	assert.Equal(t, time.Second, r.Interval())
	assert.Len(t, r.Testimonials(), 5)

	st := r.Current()
	assert.Equal(t, 0, st.Index)
	assert.Equal(t, 5, st.Total)
	assert.Equal(t, "Sarah Johnson", st.Testimonial.Name)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Sarah+Johnson", st.AvatarURL)

	assert.Equal(t, 4, r.Previous().Index)
	assert.Equal(t, "4", storedCursor(t, cache))
	assert.Equal(t, 0, r.Next().Index)
	assert.Equal(t, "0", storedCursor(t, cache))

	st, err := r.Jump(3)
	require.NoError(t, err)
	assert.Equal(t, "David Wilson", st.Testimonial.Name)
	assert.Equal(t, "3", storedCursor(t, cache))

	_, err = r.Jump(5)
	require.ErrorIs(t, err, carousel.ErrIndexOutOfRange)
	assert.Equal(t, 3, r.Current().Index)
}

func TestTestimonialRotation_ConcurrentNavigationPersistsFinalCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		next     int
		previous int
	}{
		{name: "balanced", next: 40, previous: 40},
		{name: "mostly forward", next: 60, previous: 17},
		{name: "mostly backward", next: 9, previous: 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cache := data.NewMemoryCacheRepo()
			r, _ := newRotation(t, cache)

			var wg sync.WaitGroup
			for range tt.next {
				wg.Add(1)
				go func() { defer wg.Done(); r.Next() }()
			}
			for range tt.previous {
				wg.Add(1)
				go func() { defer wg.Done(); r.Previous() }()
			}
			wg.Wait()

			total := len(r.Testimonials())
			want := ((tt.next-tt.previous)%total + total) % total
			assert.Equal(t, want, r.Current().Index)
			assert.Equal(t, strconv.Itoa(want), storedCursor(t, cache))
		})
	}
}

func TestTestimonialRotation_Restore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored string
		want   int
	}{
		{name: "valid cursor", stored: "2", want: 2},
		{name: "missing cursor", stored: "", want: 0},
		{name: "malformed cursor", stored: "two", want: 0},
		{name: "out of range cursor", stored: "9", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cache := data.NewMemoryCacheRepo()
			if tt.stored != "" {
				require.NoError(t, cache.Set(context.Background(), testimonialCursorKey, []byte(tt.stored), 0))
			}
			r, _ := newRotation(t, cache)

			require.NoError(t, r.Restore(context.Background()))
			assert.Equal(t, tt.want, r.Current().Index)
		})
	}
}

func TestTestimonialRotation_RestoreSurvivesRestart(t *testing.T) {
	t.Parallel()
	cache := data.NewMemoryCacheRepo()

	first, _ := newRotation(t, cache)
	first.Next()
	first.Next()

	second, _ := newRotation(t, cache)
	require.NoError(t, second.Restore(context.Background()))
	assert.Equal(t, 2, second.Current().Index)
}

func TestTestimonialRotation_RestoreCacheError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCacheRepository(ctrl)
	cache.EXPECT().Get(gomock.Any(), testimonialCursorKey).Return(nil, errors.New("redis down"))

	r, err := NewTestimonialRotation(TestimonialRotationOptions{
		Testimonials: DefaultTestimonials(),
		Cache:        cache,
	})
	require.NoError(t, err)
	t.Cleanup(r.Close)

	require.Error(t, r.Restore(context.Background()))
	assert.Equal(t, 0, r.Current().Index)
}

func TestTestimonialRotation_PersistFailureKeepsMoving(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCacheRepository(ctrl)
	cache.EXPECT().Set(gomock.Any(), testimonialCursorKey, []byte("1"), time.Duration(0)).
		Return(errors.New("redis down"))

	rec := &statsd.Recorder{}
	r, err := NewTestimonialRotation(TestimonialRotationOptions{
		Testimonials: DefaultTestimonials(),
		Cache:        cache,
		Metrics:      rec,
	})
	require.NoError(t, err)
	t.Cleanup(r.Close)

	assert.Equal(t, 1, r.Next().Index)
	gauges := rec.Find("gauge", "carousel.cursor")
	require.Len(t, gauges, 1)
	assert.InDelta(t, 1.0, gauges[0].Value, 0)
	assert.Equal(t, "testimonials", gauges[0].Tags["carousel"])
}

func TestTestimonialRotation_Run(t *testing.T) {
	t.Parallel()
	cache := data.NewMemoryCacheRepo()
	r, tickers := newRotation(t, cache)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	var tk *manualTicker
	select {
	case tk = <-tickers:
	case <-time.After(2 * time.Second):
		t.Fatal("auto-advance ticker was not created")
	}

	tk.ch <- time.Now()
	assert.Eventually(t, func() bool { return r.Current().Index == 1 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		raw, err := cache.Get(context.Background(), testimonialCursorKey)
		return err == nil && string(raw) == "1"
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestTestimonialRotation_RunDeadline(t *testing.T) {
	t.Parallel()
	r, _ := newRotation(t, data.NewMemoryCacheRepo())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, r.Run(ctx), context.DeadlineExceeded)
}
