// Package carousel implements a cyclic cursor over a fixed number of items with
// manual navigation and timer-driven auto-advance.
//
// A Controller is safe for concurrent use. Ticks from the auto-advance goroutine
// and manual navigation are serialized through the same lock, and observers are
// notified synchronously after the lock is released.
package carousel

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrEmpty is returned by New when the carousel would have no items.
	ErrEmpty = errors.New("carousel: at least one item is required")
	// ErrIndexOutOfRange is returned when a jump target is outside [0, n).
	ErrIndexOutOfRange = errors.New("carousel: index out of range")
	// ErrInvalidInterval is returned when auto-advance is started with a non-positive interval.
	ErrInvalidInterval = errors.New("carousel: interval must be positive")
	// ErrClosed is returned when auto-advance is requested on a closed controller.
	ErrClosed = errors.New("carousel: controller closed")
)

// Observer receives the cursor after each navigation.
type Observer func(index int)

// Ticker is the subset of time.Ticker the controller needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a Ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (r timeTicker) C() <-chan time.Time { return r.t.C }
func (r timeTicker) Stop()               { r.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Options configures a Controller.
type Options struct {
	Start     int           // Optional: initial cursor, must be in [0, n)
	NewTicker TickerFactory // Optional: defaults to NewTimeTicker
}

type observerEntry struct {
	id int
	fn Observer
}

// Controller holds the cursor for n items.
type Controller struct {
	mu        sync.Mutex
	n         int
	cursor    int
	observers []observerEntry
	nextObsID int
	stopAuto  func()
	autoGen   uint64
	closed    bool
	newTicker TickerFactory
}

// New creates a controller over n items.
func New(n int, opts Options) (*Controller, error) {
	if n < 1 {
		return nil, ErrEmpty
	}
	if opts.Start < 0 || opts.Start >= n {
		return nil, ErrIndexOutOfRange
	}
	newTicker := opts.NewTicker
	if newTicker == nil {
		newTicker = NewTimeTicker
	}
	return &Controller{n: n, cursor: opts.Start, newTicker: newTicker}, nil
}

// Len returns the number of items.
func (c *Controller) Len() int { return c.n }

// Current returns the cursor.
func (c *Controller) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// Advance moves to the next item, wrapping from the last to the first.
func (c *Controller) Advance() int {
	return c.move(func(cur int) int { return (cur + 1) % c.n })
}

// Retreat moves to the previous item, wrapping from the first to the last.
func (c *Controller) Retreat() int {
	return c.move(func(cur int) int { return (cur - 1 + c.n) % c.n })
}

// JumpTo moves directly to index i. The cursor is unchanged when i is out of range.
func (c *Controller) JumpTo(i int) error {
	if i < 0 || i >= c.n {
		return ErrIndexOutOfRange
	}
	c.move(func(int) int { return i })
	return nil
}

func (c *Controller) move(next func(int) int) int {
	c.mu.Lock()
	c.cursor = next(c.cursor)
	idx := c.cursor
	observers := make([]Observer, len(c.observers))
	for i, o := range c.observers {
		observers[i] = o.fn
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(idx)
	}
	return idx
}

// Observe registers fn to be called after every navigation and returns a function that removes it.
func (c *Controller) Observe(fn Observer) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextObsID
	c.nextObsID++
	c.observers = append(c.observers, observerEntry{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// AutoAdvance calls Advance every interval until the returned cancel function is called,
// a later AutoAdvance replaces it, or the controller is closed. Cancel is idempotent.
func (c *Controller) AutoAdvance(interval time.Duration) (func(), error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	if c.stopAuto != nil {
		c.stopAuto()
	}

	ticker := c.newTicker(interval)
	done := make(chan struct{})
	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(done)
			ticker.Stop()
		})
	}
	c.autoGen++
	gen := c.autoGen
	c.stopAuto = stop
	c.mu.Unlock()

	go c.runAuto(ticker, done)

	return func() {
		c.mu.Lock()
		if c.autoGen == gen {
			c.stopAuto = nil
		}
		c.mu.Unlock()
		stop()
	}, nil
}

func (c *Controller) runAuto(ticker Ticker, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C():
			select {
			case <-done:
				return
			default:
			}
			c.Advance()
		}
	}
}

// Close stops any running auto-advance. Further AutoAdvance calls fail with ErrClosed;
// manual navigation keeps working. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	stop := c.stopAuto
	c.stopAuto = nil
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
}
