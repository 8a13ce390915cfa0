package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/net/publicsuffix"

	"github.com/localjobs/localjobs-web/internal/core"
	"github.com/localjobs/localjobs-web/internal/domain/model"
	apperrors "github.com/localjobs/localjobs-web/internal/errors"
	"github.com/localjobs/localjobs-web/internal/observability/metrics"
	"github.com/localjobs/localjobs-web/internal/observability/statsd"
)

// DefaultStoreTimeout bounds a store call when the caller's context has no deadline.
const DefaultStoreTimeout = 5 * time.Second

// NotificationServiceConfig holds tunables for NotificationService.
type NotificationServiceConfig struct {
	Timeout time.Duration // per-call deadline applied when ctx has none
	BaseURL string        // absolute links must be same-site with this URL when set
	Backend string        // metric tag only
}

// NotificationServiceOptions groups dependencies for NotificationService.
type NotificationServiceOptions struct {
	Repo    core.NotificationRepository // Required
	Logger  *slog.Logger                // Optional
	Metrics statsd.Sink                 // Optional
	Config  NotificationServiceConfig
}

// NotificationService is the notification store client used by the HTTP layer and the admin CLI.
//
// Store errors are logged and returned unchanged so callers can match the
// store's sentinels (not found, unavailable). Nothing is retried.
type NotificationService struct {
	repo    core.NotificationRepository
	logger  *slog.Logger
	metrics statsd.Sink
	timeout time.Duration
	baseURL *url.URL
	backend string
}

// NewNotificationService constructs a NotificationService. It panics when Repo is nil.
func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	if opts.Repo == nil {
		panic("NotificationRepository is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.Config.Timeout
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}

	var base *url.URL
	if raw := strings.TrimSpace(opts.Config.BaseURL); raw != "" {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			base = u
		} else {
			logger.Warn("ignoring invalid base URL for link checks", "base_url", raw)
		}
	}

	return &NotificationService{
		repo:    opts.Repo,
		logger:  logger.With("component", "notification_service"),
		metrics: opts.Metrics,
		timeout: timeout,
		baseURL: base,
		backend: opts.Config.Backend,
	}
}

// List returns the user's notifications, newest first.
// Records with equal timestamps keep the order the store returned them in.
func (s *NotificationService) List(ctx context.Context, userID string) ([]*model.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperrors.ValidationField("user_id", "user id is required")
	}

	var items []*model.Notification
	err := s.call(ctx, "list", func(ctx context.Context) error {
		var err error
		items, err = s.repo.List(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "list notifications failed", "user_id", userID, "error", err)
		return nil, err
	}

	SortNewestFirst(items)
	return items, nil
}

// SortNewestFirst stable-sorts notifications by CreatedAt descending.
func SortNewestFirst(items []*model.Notification) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

// Create stores a new unread notification and returns the stored record.
// Each call creates a new record.
func (s *NotificationService) Create(
	ctx context.Context,
	req *model.CreateNotificationRequest,
) (*model.Notification, error) {
	if req == nil {
		return nil, apperrors.Validation("notification request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid notification request")
	}
	if err := s.checkLink(req.Link); err != nil {
		return nil, err
	}

	var created *model.Notification
	err := s.call(ctx, "create", func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, req)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "create notification failed",
			"user_id", req.UserID, "type", req.Type, "error", err)
		return nil, err
	}

	s.logger.DebugContext(ctx, "notification created", "id", created.ID, "user_id", created.UserID)
	return created, nil
}

// MarkRead marks the notification read and stamps its read time.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.toggle(ctx, "mark_read", id, s.repo.MarkRead)
}

// MarkUnread marks the notification unread and clears its read time.
func (s *NotificationService) MarkUnread(ctx context.Context, id string) error {
	return s.toggle(ctx, "mark_unread", id, s.repo.MarkUnread)
}

func (s *NotificationService) toggle(
	ctx context.Context,
	op, id string,
	fn func(context.Context, string) error,
) error {
	id = strings.TrimSpace(id)
	err := s.call(ctx, op, func(ctx context.Context) error { return fn(ctx, id) })
	if err != nil {
		s.logger.ErrorContext(ctx, "update notification failed", "op", op, "id", id, "error", err)
		return err
	}
	return nil
}

// UnreadCount returns how many of the user's notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, item := range items {
		if !item.Read {
			n++
		}
	}
	return n, nil
}

// Query evaluates a JMESPath expression against the user's sorted notification list,
// rendered with its JSON field names (e.g. "[?type=='job'].message").
// An empty expression returns the list itself.
func (s *NotificationService) Query(ctx context.Context, userID, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr != "" {
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, apperrors.ValidationField("query", fmt.Sprintf("invalid query: %v", err))
		}
	}

	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if expr == "" {
		return items, nil
	}

	doc, err := toJSONDocument(items)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode notifications for query")
	}
	out, err := jmespath.Search(expr, doc)
	if err != nil {
		return nil, apperrors.ValidationField("query", fmt.Sprintf("query failed: %v", err))
	}
	return out, nil
}

func toJSONDocument(items []*model.Notification) (any, error) {
	if items == nil {
		items = []*model.Notification{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// call applies the default deadline and emits the operation metric.
func (s *NotificationService) call(ctx context.Context, op string, fn func(context.Context) error) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	metrics.EmitStoreOp(s.metrics, metrics.StoreOp{
		Op:       op,
		Backend:  s.backend,
		Duration: time.Since(start),
		Err:      err,
	})
	return err
}

// checkLink rejects absolute links that leave the site when a base URL is configured.
// Sites are compared by registrable domain (eTLD+1), so subdomains are allowed.
func (s *NotificationService) checkLink(link *string) error {
	if link == nil || s.baseURL == nil || !model.IsAbsoluteLink(*link) {
		return nil
	}
	u, err := url.Parse(*link)
	if err != nil {
		return apperrors.ValidationField("link", "link is not a valid URL")
	}
	if !sameSite(u.Hostname(), s.baseURL.Hostname()) {
		return apperrors.ValidationField("link", "link must point to this site")
	}
	return nil
}

func sameSite(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	ea, errA := publicsuffix.EffectiveTLDPlusOne(a)
	eb, errB := publicsuffix.EffectiveTLDPlusOne(b)
	if errA != nil || errB != nil {
		return false
	}
	return ea == eb
}

// IsInvalidArgument reports whether err is a caller error (bad input) rather than a store failure.
func IsInvalidArgument(err error) bool {
	return apperrors.IsValidation(err) || errors.Is(err, ErrInvalidLocale)
}
