// Package testutil provides testing utilities and helpers for the localjobs services.
package testutil

import "github.com/localjobs/localjobs-web/internal/domain/model"

// NotificationRequestBuilder provides a fluent interface for building CreateNotificationRequest objects for testing.
type NotificationRequestBuilder struct {
	req *model.CreateNotificationRequest
}

// NewNotificationRequest creates a new NotificationRequestBuilder with sensible defaults.
func NewNotificationRequest(userID string) *NotificationRequestBuilder {
	return &NotificationRequestBuilder{
		req: &model.CreateNotificationRequest{
			UserID:  userID,
			Message: "A new job matches your profile",
			Type:    model.NotificationTypeJob,
		},
	}
}

// WithMessage sets the notification message.
func (b *NotificationRequestBuilder) WithMessage(msg string) *NotificationRequestBuilder {
	b.req.Message = msg
	return b
}

// WithType sets the notification type.
func (b *NotificationRequestBuilder) WithType(t model.NotificationType) *NotificationRequestBuilder {
	b.req.Type = t
	return b
}

// WithLink sets the navigation link.
func (b *NotificationRequestBuilder) WithLink(link string) *NotificationRequestBuilder {
	b.req.Link = &link
	return b
}

// Build returns a fresh copy of the request so builders can be reused.
func (b *NotificationRequestBuilder) Build() *model.CreateNotificationRequest {
	cp := *b.req
	if b.req.Link != nil {
		link := *b.req.Link
		cp.Link = &link
	}
	return &cp
}
