package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/localjobs/localjobs-web/internal/domain/model"
	"github.com/localjobs/localjobs-web/internal/service"
)

// NotificationHandlers provides HTTP handlers for the notification store client.
type NotificationHandlers struct {
	Svc    *service.NotificationService
	Logger *slog.Logger
}

// notificationListResponse is the body of GET /api/notifications.
type notificationListResponse struct {
	Notifications []*model.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// List handles GET /api/notifications. With ?query= the JMESPath projection is returned as
// {"result": ...} instead of the list.
func (h *NotificationHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromRequest(r)
	if userID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation_failed",
			Err:     errors.New("user_id is required"),
			Field:   "user_id",
		})
		return
	}

	if expr := strings.TrimSpace(r.URL.Query().Get("query")); expr != "" {
		out, err := h.Svc.Query(r.Context(), userID, expr)
		if err != nil {
			writeServiceError(w, r, h.Logger, err, "query_failed")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"result": out})
		return
	}

	items, err := h.Svc.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, h.Logger, err, "list_failed")
		return
	}
	if items == nil {
		items = []*model.Notification{}
	}

	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	WriteJSON(w, http.StatusOK, notificationListResponse{Notifications: items, UnreadCount: unread})
}

// Create handles POST /api/notifications.
func (h *NotificationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateNotificationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	created, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, h.Logger, err, "create_failed")
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// MarkRead handles POST /api/notifications/{id}/read.
func (h *NotificationHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Svc.MarkRead)
}

// MarkUnread handles POST /api/notifications/{id}/unread.
func (h *NotificationHandlers) MarkUnread(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Svc.MarkUnread)
}

func (h *NotificationHandlers) toggle(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id string) error,
) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("notification id is required"),
		})
		return
	}

	if err := fn(r.Context(), id); err != nil {
		writeServiceError(w, r, h.Logger, err, "update_failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
