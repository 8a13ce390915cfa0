package data

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localjobs/localjobs-web/internal/core"
	"github.com/localjobs/localjobs-web/internal/domain/model"
	"github.com/localjobs/localjobs-web/internal/testutil"
)

// runNotificationRepoContract exercises the behavior every NotificationRepository backend must share.
func runNotificationRepoContract(t *testing.T, repo core.NotificationRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("create assigns id and timestamp and defaults to unread", func(t *testing.T) {
		user := "user-" + uuid.NewString()
		n, err := repo.Create(ctx, testutil.NewNotificationRequest(user).WithLink("/dashboard/messages").Build())
		require.NoError(t, err)

		assert.NotEmpty(t, n.ID)
		assert.False(t, n.CreatedAt.IsZero())
		assert.False(t, n.Read)
		assert.Nil(t, n.ReadAt)
		require.NotNil(t, n.Link)
		assert.Equal(t, "/dashboard/messages", *n.Link)

		list, err := repo.List(ctx, user)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, n.ID, list[0].ID)
		assert.False(t, list[0].Read)
		assert.True(t, n.CreatedAt.Equal(list[0].CreatedAt),
			"create returned %s, store holds %s", n.CreatedAt, list[0].CreatedAt)
	})

	t.Run("list filters by owner", func(t *testing.T) {
		alice := "alice-" + uuid.NewString()
		bob := "bob-" + uuid.NewString()
		for range 3 {
			_, err := repo.Create(ctx, testutil.NewNotificationRequest(alice).Build())
			require.NoError(t, err)
		}
		_, err := repo.Create(ctx, testutil.NewNotificationRequest(bob).Build())
		require.NoError(t, err)

		list, err := repo.List(ctx, alice)
		require.NoError(t, err)
		assert.Len(t, list, 3)
		for _, n := range list {
			assert.Equal(t, alice, n.UserID)
		}

		empty, err := repo.List(ctx, "nobody-"+uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("creation timestamps are ordered", func(t *testing.T) {
		user := "order-" + uuid.NewString()
		var ids []string
		for _, msg := range []string{"first", "second", "third"} {
			n, err := repo.Create(ctx, testutil.NewNotificationRequest(user).WithMessage(msg).Build())
			require.NoError(t, err)
			ids = append(ids, n.ID)
			time.Sleep(2 * time.Millisecond)
		}

		list, err := repo.List(ctx, user)
		require.NoError(t, err)
		require.Len(t, list, 3)
		sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
		assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{list[0].ID, list[1].ID, list[2].ID})
	})

	t.Run("mark read then unread round-trips", func(t *testing.T) {
		user := "toggle-" + uuid.NewString()
		n, err := repo.Create(ctx, testutil.NewNotificationRequest(user).WithType(model.NotificationTypeMessage).Build())
		require.NoError(t, err)

		require.NoError(t, repo.MarkRead(ctx, n.ID))
		require.NoError(t, repo.MarkRead(ctx, n.ID), "mark read is idempotent")

		got := findNotification(t, repo, user, n.ID)
		assert.True(t, got.Read)
		require.NotNil(t, got.ReadAt)

		require.NoError(t, repo.MarkUnread(ctx, n.ID))
		require.NoError(t, repo.MarkUnread(ctx, n.ID), "mark unread is idempotent")

		got = findNotification(t, repo, user, n.ID)
		assert.False(t, got.Read)
		assert.Nil(t, got.ReadAt)
		assert.Equal(t, model.NotificationTypeMessage, got.Type)
	})

	t.Run("toggles on missing ids report not found", func(t *testing.T) {
		for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
			err := repo.MarkRead(ctx, id)
			assert.True(t, errors.Is(err, ErrNotificationNotFound), "mark read %q: %v", id, err)
			err = repo.MarkUnread(ctx, id)
			assert.True(t, errors.Is(err, ErrNotificationNotFound), "mark unread %q: %v", id, err)
		}
	})

	t.Run("create rejects invalid requests", func(t *testing.T) {
		_, err := repo.Create(ctx, nil)
		require.ErrorIs(t, err, ErrCreateRequestRequired)

		_, err = repo.Create(ctx, &model.CreateNotificationRequest{UserID: "u", Message: "m", Type: "promo"})
		require.Error(t, err)
	})
}

func findNotification(t *testing.T, repo core.NotificationRepository, userID, id string) *model.Notification {
	t.Helper()
	list, err := repo.List(context.Background(), userID)
	require.NoError(t, err)
	for _, n := range list {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("notification %s not found for user %s", id, userID)
	return nil
}
