package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/localjobs/localjobs-web/internal/core"
	"github.com/localjobs/localjobs-web/internal/domain/model"
	"github.com/localjobs/localjobs-web/internal/observability/metrics"
	"github.com/localjobs/localjobs-web/internal/observability/statsd"
	"github.com/localjobs/localjobs-web/internal/service/carousel"
)

// DefaultRotationInterval is the testimonial auto-advance period.
const DefaultRotationInterval = 5 * time.Second

const (
	testimonialCursorKey = "carousel:testimonials:cursor"
	testimonialCarousel  = "testimonials"
	cursorPersistTimeout = 2 * time.Second
)

// TestimonialRotationConfig holds rotation tunables.
type TestimonialRotationConfig struct {
	Interval  time.Duration          // auto-advance period, defaults to 5s
	NewTicker carousel.TickerFactory // Optional: clock override for tests
}

// TestimonialRotationOptions groups dependencies for TestimonialRotation.
type TestimonialRotationOptions struct {
	Testimonials []model.Testimonial  // Required: at least one
	Cache        core.CacheRepository // Optional: cursor persistence
	Logger       *slog.Logger         // Optional
	Metrics      statsd.Sink          // Optional
	Config       TestimonialRotationConfig
}

// CarouselState is the current position of the testimonial carousel.
type CarouselState struct {
	Index       int               `json:"index"`
	Total       int               `json:"total"`
	Testimonial model.Testimonial `json:"testimonial"`
	AvatarURL   string            `json:"avatarUrl"`
}

// TestimonialRotation owns the process-wide testimonial carousel.
// Every navigation is persisted to the cache so a restart resumes at the same item.
type TestimonialRotation struct {
	items    []model.Testimonial
	ctrl     *carousel.Controller
	cache    core.CacheRepository
	logger   *slog.Logger
	metrics  statsd.Sink
	interval time.Duration

	// persistMu orders cursor writes; each write stores the cursor read under it.
	persistMu sync.Mutex
}

// NewTestimonialRotation validates the testimonials and builds the controller.
func NewTestimonialRotation(opts TestimonialRotationOptions) (*TestimonialRotation, error) {
	if err := model.ValidateTestimonials(opts.Testimonials); err != nil {
		return nil, fmt.Errorf("invalid testimonials: %w", err)
	}
	ctrl, err := carousel.New(len(opts.Testimonials), carousel.Options{NewTicker: opts.Config.NewTicker})
	if err != nil {
		return nil, fmt.Errorf("create carousel: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	interval := opts.Config.Interval
	if interval <= 0 {
		interval = DefaultRotationInterval
	}

	r := &TestimonialRotation{
		items:    append([]model.Testimonial(nil), opts.Testimonials...),
		ctrl:     ctrl,
		cache:    opts.Cache,
		logger:   logger.With("component", "testimonial_rotation"),
		metrics:  opts.Metrics,
		interval: interval,
	}
	ctrl.Observe(r.onMove)
	return r, nil
}

// Testimonials returns a copy of the testimonial set.
func (r *TestimonialRotation) Testimonials() []model.Testimonial {
	return append([]model.Testimonial(nil), r.items...)
}

// Interval returns the auto-advance period.
func (r *TestimonialRotation) Interval() time.Duration { return r.interval }

// Current returns the state at the cursor.
func (r *TestimonialRotation) Current() CarouselState {
	return r.state(r.ctrl.Current())
}

// Next advances one item.
func (r *TestimonialRotation) Next() CarouselState {
	return r.state(r.ctrl.Advance())
}

// Previous goes back one item.
func (r *TestimonialRotation) Previous() CarouselState {
	return r.state(r.ctrl.Retreat())
}

// Jump moves to index. It returns carousel.ErrIndexOutOfRange for an invalid index.
func (r *TestimonialRotation) Jump(index int) (CarouselState, error) {
	if err := r.ctrl.JumpTo(index); err != nil {
		return CarouselState{}, err
	}
	return r.Current(), nil
}

func (r *TestimonialRotation) state(idx int) CarouselState {
	t := r.items[idx]
	return CarouselState{Index: idx, Total: len(r.items), Testimonial: t, AvatarURL: t.AvatarURL()}
}

// Restore moves the cursor to the persisted position, if any.
// A missing, malformed or out-of-range value leaves the cursor at the first item.
func (r *TestimonialRotation) Restore(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}
	raw, err := r.cache.Get(ctx, testimonialCursorKey)
	if err != nil {
		return fmt.Errorf("load carousel cursor: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}
	idx, err := strconv.Atoi(string(raw))
	if err != nil {
		r.logger.WarnContext(ctx, "ignoring malformed carousel cursor", "value", string(raw))
		return nil
	}
	if err := r.ctrl.JumpTo(idx); err != nil {
		r.logger.WarnContext(ctx, "ignoring out-of-range carousel cursor", "index", idx, "total", len(r.items))
	}
	return nil
}

// onMove persists the controller's current cursor rather than the notified index.
// Observers run outside the controller lock, so notifications for concurrent moves
// can arrive in any order; the last write always reflects the final position.
func (r *TestimonialRotation) onMove(int) {
	r.persistMu.Lock()
	defer r.persistMu.Unlock()

	idx := r.ctrl.Current()
	metrics.EmitCarouselCursor(r.metrics, testimonialCarousel, idx)
	if r.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cursorPersistTimeout)
	defer cancel()
	if err := r.cache.Set(ctx, testimonialCursorKey, []byte(strconv.Itoa(idx)), 0); err != nil {
		r.logger.Warn("persist carousel cursor failed", "index", idx, "error", err)
	}
}

// Run auto-advances the carousel until ctx is cancelled.
// Returns nil on graceful shutdown (context.Canceled), error otherwise.
func (r *TestimonialRotation) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting testimonial rotation", "interval", r.interval, "total", len(r.items))

	cancel, err := r.ctrl.AutoAdvance(r.interval)
	if err != nil {
		return fmt.Errorf("start auto-advance: %w", err)
	}
	defer cancel()

	<-ctx.Done()
	r.logger.InfoContext(ctx, "testimonial rotation stopping", "reason", ctx.Err())
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return ctx.Err()
}

// Close releases the auto-advance timer.
func (r *TestimonialRotation) Close() {
	r.ctrl.Close()
}
