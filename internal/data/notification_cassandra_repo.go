package data

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"

	"github.com/gocql/gocql"

	"github.com/localjobs/localjobs-web/internal/domain/model"
)

const (
	cassandraNotificationsTable = `
		CREATE TABLE IF NOT EXISTS notifications (
			id timeuuid PRIMARY KEY,
			user_id text,
			message text,
			type text,
			read boolean,
			created_at timestamp,
			read_at timestamp,
			link text
		)`
	cassandraNotificationsIndex = `CREATE INDEX IF NOT EXISTS notifications_user_id_idx ON notifications (user_id)`

	cassandraListQuery = `SELECT id, user_id, message, type, read, created_at, read_at, link
		FROM notifications WHERE user_id = ?`
	cassandraGetQuery = `SELECT id, user_id, message, type, read, created_at, read_at, link
		FROM notifications WHERE id = ?`
	// created_at comes from the coordinator clock, like read_at in the toggles.
	cassandraInsertQuery = `INSERT INTO notifications (id, user_id, message, type, read, created_at, read_at, link)
		VALUES (?, ?, ?, ?, false, toTimestamp(now()), null, ?)`
	cassandraMarkReadQuery   = `UPDATE notifications SET read = true, read_at = toTimestamp(now()) WHERE id = ? IF EXISTS`
	cassandraMarkUnreadQuery = `UPDATE notifications SET read = false, read_at = null WHERE id = ? IF EXISTS`
)

var keyspaceNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,47}$`)

// CassandraNotificationRepo stores notifications in a Cassandra table keyed by time-based UUID.
// Owner lookups go through a secondary index; toggles use lightweight transactions
// so a missing id is reported instead of silently upserted.
type CassandraNotificationRepo struct {
	session *gocql.Session
}

// NewCassandraNotificationRepo creates a repository over an open session bound to the keyspace.
func NewCassandraNotificationRepo(session *gocql.Session) *CassandraNotificationRepo {
	return &CassandraNotificationRepo{session: session}
}

// EnsureCassandraKeyspace creates the keyspace with SimpleStrategy replication if it is missing.
// The session must not be bound to the keyspace being created.
func EnsureCassandraKeyspace(ctx context.Context, session *gocql.Session, keyspace string, rf int) error {
	if !keyspaceNamePattern.MatchString(keyspace) {
		return fmt.Errorf("invalid keyspace name %q", keyspace)
	}
	stmt := fmt.Sprintf(
		`CREATE KEYSPACE IF NOT EXISTS %s WITH replication = {'class': 'SimpleStrategy', 'replication_factor': %d}`,
		keyspace,
		rf,
	)
	if err := session.Query(stmt).WithContext(ctx).Exec(); err != nil {
		return classifyCassandraErr("create keyspace", err)
	}
	return nil
}

// EnsureSchema creates the notifications table and its owner index.
func (r *CassandraNotificationRepo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range []string{cassandraNotificationsTable, cassandraNotificationsIndex} {
		if err := r.session.Query(stmt).WithContext(ctx).Exec(); err != nil {
			return classifyCassandraErr("ensure notifications schema", err)
		}
	}
	return nil
}

// List returns every notification owned by userID in storage order.
func (r *CassandraNotificationRepo) List(ctx context.Context, userID string) ([]*model.Notification, error) {
	iter := r.session.Query(cassandraListQuery, userID).WithContext(ctx).Iter()

	var out []*model.Notification
	for {
		n, ok := scanCassandraNotification(iter)
		if !ok {
			break
		}
		out = append(out, n)
	}
	if err := iter.Close(); err != nil {
		return nil, classifyCassandraErr("list notifications", err)
	}
	return out, nil
}

// Create inserts a notification under a fresh time-based UUID. created_at is
// assigned by the store, so the row is read back to return what was persisted.
func (r *CassandraNotificationRepo) Create(
	ctx context.Context,
	req *model.CreateNotificationRequest,
) (*model.Notification, error) {
	if req == nil {
		return nil, ErrCreateRequestRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := gocql.TimeUUID()
	err := r.session.Query(
		cassandraInsertQuery,
		id, req.UserID, req.Message, string(req.Type), req.Link,
	).WithContext(ctx).Exec()
	if err != nil {
		return nil, classifyCassandraErr("create notification", err)
	}

	iter := r.session.Query(cassandraGetQuery, id).WithContext(ctx).Iter()
	n, ok := scanCassandraNotification(iter)
	if err := iter.Close(); err != nil {
		return nil, classifyCassandraErr("read created notification", err)
	}
	if !ok {
		// only possible when the configured consistency cannot read its own writes
		return nil, fmt.Errorf("read created notification %s: row not visible at session consistency", id)
	}
	return n, nil
}

func scanCassandraNotification(iter *gocql.Iter) (*model.Notification, bool) {
	var (
		id  gocql.UUID
		typ string
		n   model.Notification
	)
	if !iter.Scan(&id, &n.UserID, &n.Message, &typ, &n.Read, &n.CreatedAt, &n.ReadAt, &n.Link) {
		return nil, false
	}
	n.ID = id.String()
	n.Type = model.NotificationType(typ)
	n.CreatedAt = n.CreatedAt.UTC()
	if n.ReadAt != nil {
		utc := n.ReadAt.UTC()
		n.ReadAt = &utc
	}
	return &n, true
}

// MarkRead sets read=true and stamps read_at with the coordinator clock.
func (r *CassandraNotificationRepo) MarkRead(ctx context.Context, id string) error {
	return r.toggle(ctx, cassandraMarkReadQuery, id)
}

// MarkUnread sets read=false and writes an explicit null read_at.
func (r *CassandraNotificationRepo) MarkUnread(ctx context.Context, id string) error {
	return r.toggle(ctx, cassandraMarkUnreadQuery, id)
}

func (r *CassandraNotificationRepo) toggle(ctx context.Context, query, id string) error {
	uid, err := gocql.ParseUUID(id)
	if err != nil {
		return ErrNotificationNotFound
	}

	applied, err := r.session.Query(query, uid).WithContext(ctx).ScanCAS()
	if err != nil {
		return classifyCassandraErr("update notification", err)
	}
	if !applied {
		return ErrNotificationNotFound
	}
	return nil
}

func classifyCassandraErr(op string, err error) error {
	if errors.Is(err, gocql.ErrNotFound) {
		return ErrNotificationNotFound
	}
	if isCassandraUnavailable(err) {
		return unavailable(fmt.Errorf("%s: %w", op, err))
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isCassandraUnavailable(err error) bool {
	// caller deadlines are timeouts, not outages; context errors also satisfy net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	switch {
	case errors.Is(err, gocql.ErrUnavailable),
		errors.Is(err, gocql.ErrNoConnections),
		errors.Is(err, gocql.ErrNoConnectionsStarted),
		errors.Is(err, gocql.ErrNoHosts),
		errors.Is(err, gocql.ErrSessionClosed),
		errors.Is(err, gocql.ErrConnectionClosed),
		errors.Is(err, gocql.ErrTimeoutNoResponse):
		return true
	}

	var reqErr gocql.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.Code() {
		case gocql.ErrCodeUnavailable,
			gocql.ErrCodeOverloaded,
			gocql.ErrCodeBootstrapping,
			gocql.ErrCodeWriteTimeout,
			gocql.ErrCodeReadTimeout:
			return true
		}
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
