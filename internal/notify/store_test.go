package notify_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dost/internal/notify"
)

func TestStore_AddCreatesToastAndHistory(t *testing.T) {
	store := notify.NewStore(time.Minute, 50)

	created := store.Add("Room created", "room \"Deluxe King 305\" was added", notify.TypeInfo)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsRead)
	assert.Equal(t, notify.TypeInfo, created.Type)

	toasts := store.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, created.ID, toasts[0].ID)

	history := store.History()
	require.Len(t, history, 1)
	assert.Equal(t, created.ID, history[0].ID)
	assert.Equal(t, 1, store.UnreadCount())
}

func TestStore_HistoryNewestFirstAndCapped(t *testing.T) {
	const limit = 50

	store := notify.NewStore(time.Minute, limit)

	var lastID string
	for i := 0; i < limit+10; i++ {
		created := store.Add(fmt.Sprintf("event %d", i), "detail", notify.TypeInfo)
		lastID = created.ID
	}

	history := store.History()
	require.Len(t, history, limit)
	assert.Equal(t, lastID, history[0].ID)
	assert.Equal(t, "event 59", history[0].Title)
	assert.Equal(t, "event 10", history[limit-1].Title)
}

func TestStore_ToastExpires(t *testing.T) {
	store := notify.NewStore(20*time.Millisecond, 50)

	store.Add("transient", "detail", notify.TypeSuccess)
	require.Len(t, store.Toasts(), 1)

	assert.Eventually(t, func() bool {
		return len(store.Toasts()) == 0
	}, time.Second, 10*time.Millisecond, "toast should expire after its TTL")

	// History keeps the entry after the toast is gone.
	assert.Len(t, store.History(), 1)
}

func TestStore_DismissRemovesToastOnly(t *testing.T) {
	store := notify.NewStore(time.Minute, 50)

	created := store.Add("dismiss me", "detail", notify.TypeWarning)
	store.Dismiss(created.ID)

	assert.Empty(t, store.Toasts())
	assert.Len(t, store.History(), 1)
	assert.Equal(t, 1, store.UnreadCount())
}

func TestStore_MarkRead(t *testing.T) {
	store := notify.NewStore(time.Minute, 50)

	first := store.Add("first", "detail", notify.TypeInfo)
	store.Add("second", "detail", notify.TypeInfo)

	store.MarkRead(first.ID)
	assert.Equal(t, 1, store.UnreadCount())

	store.MarkAllRead()
	assert.Equal(t, 0, store.UnreadCount())

	for _, notification := range store.History() {
		assert.True(t, notification.IsRead)
	}
}

func TestStore_ClearHistory(t *testing.T) {
	store := notify.NewStore(time.Minute, 50)

	store.Add("one", "detail", notify.TypeInfo)
	store.Add("two", "detail", notify.TypeInfo)

	store.ClearHistory()

	assert.Empty(t, store.History())
	assert.Equal(t, 0, store.UnreadCount())
}

func TestStore_SubscribeNotifies(t *testing.T) {
	store := notify.NewStore(time.Minute, 50)

	calls := 0
	unsubscribe := store.Subscribe(func() {
		calls++
	})

	store.Add("one", "detail", notify.TypeInfo)
	assert.Positive(t, calls)

	before := calls

	unsubscribe()

	store.Add("two", "detail", notify.TypeInfo)
	assert.Equal(t, before, calls)
}
