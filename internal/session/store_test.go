package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDto "dost/internal/domains/auth/model/dto"
	"dost/internal/session"
)

func TestStore_StartsLoadingWithoutUser(t *testing.T) {
	store := session.NewStore()

	snapshot := store.Snapshot()
	assert.True(t, snapshot.Loading)
	assert.Nil(t, snapshot.User)
}

func TestStore_SetUser(t *testing.T) {
	store := session.NewStore()

	store.SetUser(authDto.AuthUser{ID: "admin1", Email: "admin@dostapp.com", Role: "admin"})

	snapshot := store.Snapshot()
	require.NotNil(t, snapshot.User)
	assert.False(t, snapshot.Loading)
	assert.Equal(t, "admin1", snapshot.User.ID)

	// The snapshot holds a copy, not the store's own pointer.
	snapshot.User.ID = "mutated"
	assert.Equal(t, "admin1", store.Snapshot().User.ID)
}

func TestStore_Reset(t *testing.T) {
	store := session.NewStore()

	store.SetUser(authDto.AuthUser{ID: "admin1"})
	store.Reset()

	snapshot := store.Snapshot()
	assert.Nil(t, snapshot.User)
	assert.False(t, snapshot.Loading)
}

func TestStore_Subscribe(t *testing.T) {
	store := session.NewStore()

	calls := 0
	unsubscribe := store.Subscribe(func() {
		calls++
	})

	store.SetUser(authDto.AuthUser{ID: "admin1"})
	assert.Positive(t, calls)

	before := calls

	unsubscribe()

	store.Reset()
	assert.Equal(t, before, calls)
}
