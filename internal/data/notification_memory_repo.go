package data

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/localjobs/localjobs-web/internal/domain/model"
)

// MemoryNotificationRepo is an in-process notification store for development and tests.
// Creation timestamps are strictly increasing per repository.
type MemoryNotificationRepo struct {
	mu           sync.Mutex
	items        map[string]*model.Notification
	order        []string
	lastCreated  time.Time
	timeProvider TimeProvider
}

// NewMemoryNotificationRepo creates an empty store using the system clock.
func NewMemoryNotificationRepo() *MemoryNotificationRepo {
	return NewMemoryNotificationRepoWithTimeProvider(&RealTimeProvider{})
}

// NewMemoryNotificationRepoWithTimeProvider creates an empty store with a custom clock (useful for tests).
func NewMemoryNotificationRepoWithTimeProvider(tp TimeProvider) *MemoryNotificationRepo {
	return &MemoryNotificationRepo{
		items:        make(map[string]*model.Notification),
		timeProvider: tp,
	}
}

// List returns copies of every notification owned by userID in insertion order.
func (r *MemoryNotificationRepo) List(ctx context.Context, userID string) ([]*model.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*model.Notification
	for _, id := range r.order {
		if n := r.items[id]; n.UserID == userID {
			out = append(out, cloneNotification(n))
		}
	}
	return out, nil
}

// Create stores a new unread notification.
func (r *MemoryNotificationRepo) Create(
	ctx context.Context,
	req *model.CreateNotificationRequest,
) (*model.Notification, error) {
	if req == nil {
		return nil, ErrCreateRequestRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	createdAt := r.timeProvider.Now().UTC()
	if !createdAt.After(r.lastCreated) {
		createdAt = r.lastCreated.Add(time.Nanosecond)
	}
	r.lastCreated = createdAt

	n := &model.Notification{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Message:   req.Message,
		Type:      req.Type,
		CreatedAt: createdAt,
	}
	if req.Link != nil {
		link := *req.Link
		n.Link = &link
	}
	r.items[n.ID] = n
	r.order = append(r.order, n.ID)
	return cloneNotification(n), nil
}

// MarkRead sets read=true and stamps ReadAt.
func (r *MemoryNotificationRepo) MarkRead(ctx context.Context, id string) error {
	return r.toggle(ctx, id, func(n *model.Notification) {
		readAt := r.timeProvider.Now().UTC()
		n.Read = true
		n.ReadAt = &readAt
	})
}

// MarkUnread sets read=false and clears ReadAt.
func (r *MemoryNotificationRepo) MarkUnread(ctx context.Context, id string) error {
	return r.toggle(ctx, id, func(n *model.Notification) {
		n.Read = false
		n.ReadAt = nil
	})
}

func (r *MemoryNotificationRepo) toggle(ctx context.Context, id string, apply func(*model.Notification)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.items[id]
	if !ok {
		return ErrNotificationNotFound
	}
	apply(n)
	return nil
}

func cloneNotification(n *model.Notification) *model.Notification {
	cp := *n
	if n.ReadAt != nil {
		t := *n.ReadAt
		cp.ReadAt = &t
	}
	if n.Link != nil {
		l := *n.Link
		cp.Link = &l
	}
	return &cp
}
