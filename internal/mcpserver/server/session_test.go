package server

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionManager(t *testing.T, ttl time.Duration) *SessionManager {
	t.Helper()
	mgr := NewSessionManager(ttl)
	t.Cleanup(mgr.Close)
	return mgr
}

func TestSessionManager_CreateSession(t *testing.T) {
	mgr := newTestSessionManager(t, time.Hour)

	session := mgr.CreateSession("2025-06-18", "chatgpt")

	require.NotNil(t, session)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "2025-06-18", session.ProtocolVersion)
	assert.Equal(t, "chatgpt", session.ClientName)
	assert.False(t, session.CreatedAt.IsZero())
	assert.Equal(t, session.CreatedAt, session.LastSeen)
	assert.Equal(t, 1, mgr.Count())
}

func TestSessionManager_GetSession(t *testing.T) {
	mgr := newTestSessionManager(t, time.Hour)

	created := mgr.CreateSession("2025-06-18", "chatgpt")

	retrieved, err := mgr.GetSession(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, retrieved.ID)

	_, err = mgr.GetSession("non-existent")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionManager_Touch(t *testing.T) {
	mgr := newTestSessionManager(t, time.Hour)
	clock := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	mgr.now = func() time.Time { return clock }

	session := mgr.CreateSession("2025-06-18", "")

	clock = clock.Add(10 * time.Minute)
	require.NoError(t, mgr.Touch(session.ID))

	updated, err := mgr.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, clock, updated.LastSeen)

	assert.ErrorIs(t, mgr.Touch("non-existent"), ErrSessionNotFound)
}

func TestSessionManager_Expiry(t *testing.T) {
	mgr := newTestSessionManager(t, time.Hour)
	clock := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	mgr.now = func() time.Time { return clock }

	stale := mgr.CreateSession("2025-06-18", "")
	clock = clock.Add(30 * time.Minute)
	fresh := mgr.CreateSession("2025-06-18", "")
	clock = clock.Add(45 * time.Minute)

	_, err := mgr.GetSession(stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound, "idle past ttl")
	assert.ErrorIs(t, mgr.Touch(stale.ID), ErrSessionNotFound)

	_, err = mgr.GetSession(fresh.ID)
	assert.NoError(t, err)

	assert.Equal(t, 1, mgr.removeExpired())
	assert.Equal(t, 1, mgr.Count())
}

func TestSessionManager_DeleteSession(t *testing.T) {
	mgr := newTestSessionManager(t, time.Hour)

	session := mgr.CreateSession("2025-06-18", "")

	assert.True(t, mgr.DeleteSession(session.ID))
	assert.False(t, mgr.DeleteSession(session.ID))

	_, err := mgr.GetSession(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionManager_CloseIsIdempotent(t *testing.T) {
	mgr := NewSessionManager(time.Hour)
	mgr.Close()
	mgr.Close()
}

func TestSessionManager_ThreadSafety(t *testing.T) {
	mgr := newTestSessionManager(t, time.Hour)
	const numGoroutines = 10
	const numOpsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				session := mgr.CreateSession("2025-06-18", fmt.Sprintf("client-%d", id))
				_, _ = mgr.GetSession(session.ID)
				_ = mgr.Touch(session.ID)
				if j%2 == 0 {
					mgr.DeleteSession(session.ID)
				}
			}
		}(i)
	}

	wg.Wait()
	assert.Equal(t, numGoroutines*numOpsPerGoroutine/2, mgr.Count())
}
