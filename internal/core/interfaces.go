package core

import (
	"context"

	"github.com/localjobs/localjobs-web/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// NotificationRepository defines the interface for notification data operations.
//
// Implementations assign ID and CreatedAt on Create, return results of List in
// no particular order, and report a missing id from MarkRead/MarkUnread as
// data.ErrNotificationNotFound. Transport failures are reported as
// data.ErrStoreUnavailable joined with the underlying error.
type NotificationRepository interface {
	List(ctx context.Context, userID string) ([]*model.Notification, error)
	Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkUnread(ctx context.Context, id string) error
}

// LocalePreferenceStore persists a visitor's language selection.
type LocalePreferenceStore interface {
	// Get returns the stored locale and whether one was found.
	Get(ctx context.Context, visitorID string) (string, bool, error)
	// Set stores the locale for the visitor.
	Set(ctx context.Context, visitorID, locale string) error
}
