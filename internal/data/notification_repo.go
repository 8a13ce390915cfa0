package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/localjobs/localjobs-web/internal/data/pgxutil"
	"github.com/localjobs/localjobs-web/internal/domain/model"
	apperrors "github.com/localjobs/localjobs-web/internal/errors"
)

const (
	notificationColumns = `id, user_id, message, type, read, created_at, read_at, link`

	notificationListQuery = `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1`

	notificationInsertQuery = `
		INSERT INTO notifications (user_id, message, type, read, link)
		VALUES ($1, $2, $3, false, $4)
		RETURNING ` + notificationColumns

	notificationMarkReadQuery   = `UPDATE notifications SET read = true, read_at = now() WHERE id = $1`
	notificationMarkUnreadQuery = `UPDATE notifications SET read = false, read_at = NULL WHERE id = $1`
)

// NotificationRepo provides Postgres operations for notifications.
// IDs and creation timestamps are assigned by the database.
type NotificationRepo struct {
	DB *sql.DB
}

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{DB: db}
}

// List returns every notification owned by userID in storage order.
func (r *NotificationRepo) List(ctx context.Context, userID string) ([]*model.Notification, error) {
	rowsOut, err := pgxutil.CollectStructs[model.Notification](ctx, r.DB, pgxutil.Query{
		SQL:  notificationListQuery,
		Args: []any{userID},
	})
	if err != nil {
		return nil, classifyPgErr("list notifications", err)
	}

	res := make([]*model.Notification, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Create inserts a notification and returns the stored row.
func (r *NotificationRepo) Create(
	ctx context.Context,
	req *model.CreateNotificationRequest,
) (*model.Notification, error) {
	if req == nil {
		return nil, ErrCreateRequestRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out, err := pgxutil.CollectOneStruct[model.Notification](ctx, r.DB, pgxutil.Query{
		SQL:  notificationInsertQuery,
		Args: []any{req.UserID, req.Message, req.Type, req.Link},
	})
	if err != nil {
		return nil, classifyPgErr("create notification", err)
	}
	return &out, nil
}

// MarkRead sets read=true and stamps read_at with the database clock.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	return r.toggle(ctx, notificationMarkReadQuery, id)
}

// MarkUnread sets read=false and nulls read_at.
func (r *NotificationRepo) MarkUnread(ctx context.Context, id string) error {
	return r.toggle(ctx, notificationMarkUnreadQuery, id)
}

func (r *NotificationRepo) toggle(ctx context.Context, query, id string) error {
	// ids are UUIDs; anything else cannot exist in the table
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotificationNotFound
	}

	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return classifyPgErr("update notification", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classifyPgErr("update notification", err)
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// classifyPgErr maps driver errors onto the repository taxonomy. Deadlines keep
// their context error so callers can report a timeout rather than an outage.
func classifyPgErr(op string, err error) error {
	mapped := apperrors.MapDBError(err)
	switch {
	case apperrors.IsUnavailable(mapped):
		return unavailable(fmt.Errorf("%s: %w", op, err))
	case apperrors.IsNotFound(mapped):
		return ErrNotificationNotFound
	case apperrors.IsTimeout(mapped), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w", op, mapped)
	}
}
