package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/localjobs/localjobs-web/internal/service"
)

// CarouselHandlers exposes the testimonial carousel position.
type CarouselHandlers struct {
	Rotation *service.TestimonialRotation
	Logger   *slog.Logger
}

// carouselResponse adds the auto-advance period to the carousel state.
type carouselResponse struct {
	service.CarouselState
	IntervalMs int64 `json:"intervalMs"`
}

func (h *CarouselHandlers) write(w http.ResponseWriter, st service.CarouselState) {
	w.Header().Set("Cache-Control", "no-store")
	WriteJSON(w, http.StatusOK, carouselResponse{CarouselState: st, IntervalMs: h.Rotation.Interval().Milliseconds()})
}

// Current handles GET /api/carousel.
func (h *CarouselHandlers) Current(w http.ResponseWriter, _ *http.Request) {
	h.write(w, h.Rotation.Current())
}

// Next handles POST /api/carousel/next.
func (h *CarouselHandlers) Next(w http.ResponseWriter, _ *http.Request) {
	h.write(w, h.Rotation.Next())
}

// Previous handles POST /api/carousel/prev.
func (h *CarouselHandlers) Previous(w http.ResponseWriter, _ *http.Request) {
	h.write(w, h.Rotation.Previous())
}

// Jump handles POST /api/carousel/jump/{index}.
func (h *CarouselHandlers) Jump(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("index")
	idx, err := strconv.Atoi(raw)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_index",
			Err:     fmt.Errorf("index %q is not an integer", raw),
		})
		return
	}

	st, err := h.Rotation.Jump(idx)
	if err != nil {
		writeServiceError(w, r, h.Logger, err, "jump_failed")
		return
	}
	h.write(w, st)
}
