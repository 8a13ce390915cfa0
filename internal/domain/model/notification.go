//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const maxNotificationMessageLen = 1000

// NotificationType categorizes a notification.
type NotificationType string

const (
	NotificationTypeJob         NotificationType = "job"
	NotificationTypeApplication NotificationType = "application"
	NotificationTypeMessage     NotificationType = "message"
	NotificationTypeSystem      NotificationType = "system"
)

// Valid reports whether the notification type is supported.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeJob, NotificationTypeApplication, NotificationTypeMessage, NotificationTypeSystem:
		return true
	default:
		return false
	}
}

// ParseNotificationType normalizes a type string and reports whether it is supported.
func ParseNotificationType(value string) (NotificationType, bool) {
	t := NotificationType(strings.ToLower(strings.TrimSpace(value)))
	if t.Valid() {
		return t, true
	}
	return "", false
}

// Notification is a message addressed to a single user.
// ID and CreatedAt are assigned by the store; ReadAt is nil while unread.
type Notification struct {
	ID        string           `json:"id"             db:"id"         bson:"_id"`
	UserID    string           `json:"userId"         db:"user_id"    bson:"userId"`
	Message   string           `json:"message"        db:"message"    bson:"message"`
	Type      NotificationType `json:"type"           db:"type"       bson:"type"`
	Read      bool             `json:"read"           db:"read"       bson:"read"`
	CreatedAt time.Time        `json:"createdAt"      db:"created_at" bson:"createdAt"`
	ReadAt    *time.Time       `json:"readAt"         db:"read_at"    bson:"readAt"`
	Link      *string          `json:"link,omitempty" db:"link"       bson:"link,omitempty"`
}

// CreateNotificationRequest represents parameters to create a Notification.
type CreateNotificationRequest struct {
	UserID  string           `json:"userId"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Link    *string          `json:"link,omitempty"`
}

// Validate validates CreateNotificationRequest and normalizes its fields in place.
func (r *CreateNotificationRequest) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	if r.UserID == "" {
		return errors.New("userId is required")
	}
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return errors.New("message is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Message) > maxNotificationMessageLen {
		return errors.New("message cannot exceed 1000 characters")
	}
	t, ok := ParseNotificationType(string(r.Type))
	if !ok {
		return errors.New("type must be one of: job, application, message, system")
	}
	r.Type = t
	if r.Link != nil {
		link := strings.TrimSpace(*r.Link)
		if link == "" {
			r.Link = nil
			return nil
		}
		if err := validateLink(link); err != nil {
			return err
		}
		r.Link = &link
	}
	return nil
}

// validateLink accepts site-relative paths and absolute http(s) URLs.
func validateLink(link string) error {
	if strings.HasPrefix(link, "/") && !strings.HasPrefix(link, "//") {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("link must be a site-relative path or an http(s) URL")
	}
	return nil
}

// IsAbsoluteLink reports whether the link points at another origin rather than a site path.
func IsAbsoluteLink(link string) bool {
	return !strings.HasPrefix(link, "/") || strings.HasPrefix(link, "//")
}
