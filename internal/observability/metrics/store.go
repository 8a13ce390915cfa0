// Package metrics holds the standard metric shapes emitted by localjobs services.
package metrics

import (
	"maps"
	"time"

	obserrors "github.com/localjobs/localjobs-web/internal/observability/errors"
	"github.com/localjobs/localjobs-web/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// StoreOp captures one notification store call for metric emission.
type StoreOp struct {
	Op       string // list, create, mark_read, mark_unread
	Backend  string
	Duration time.Duration
	Err      error
}

// EmitStoreOp emits notifications.<op> as a count and a timing, tagged with the result
// and, on failure, the error class.
func EmitStoreOp(sink statsd.Sink, in StoreOp) {
	if sink == nil || in.Op == "" {
		return
	}

	tags := map[string]string{"result": ResultSuccess}
	if in.Backend != "" {
		tags["backend"] = in.Backend
	}
	if in.Err != nil {
		tags["result"] = ResultError
		tags["error_class"] = obserrors.Classify(in.Err)
	}

	name := "notifications." + in.Op
	sink.Count(name, 1, tags)
	if in.Duration > 0 {
		sink.Timing(name, in.Duration, maps.Clone(tags))
	}
}

// EmitCarouselCursor reports the current testimonial index as a gauge.
func EmitCarouselCursor(sink statsd.Sink, carousel string, index int) {
	if sink == nil {
		return
	}
	sink.Gauge("carousel.cursor", float64(index), map[string]string{"carousel": carousel})
}
