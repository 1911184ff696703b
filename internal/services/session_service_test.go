package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"gradientspace.dev/internal/models"
	"gradientspace.dev/internal/view"
)

func newSessions(t *testing.T, ttl time.Duration) *SessionService {
	t.Helper()
	return NewSessionService(view.NewRouter(), loadCatalog(t), ttl, nil)
}

func TestSessionService_CreateAndWith(t *testing.T) {
	s := newSessions(t, time.Minute)
	id := s.Create()
	assert.True(t, s.Exists(id))
	assert.Equal(t, 1, s.Count())

	err := s.With(id, func(st *view.State) error {
		return st.SelectTab(models.TabContact)
	})
	require.NoError(t, err)

	snap, err := s.Snapshot(id)
	require.NoError(t, err)
	assert.Equal(t, models.TabContact, snap.ActiveTab)
}

func TestSessionService_SessionsAreIndependent(t *testing.T) {
	s := newSessions(t, time.Minute)
	a, b := s.Create(), s.Create()
	require.NotEqual(t, a, b)

	require.NoError(t, s.With(a, func(st *view.State) error {
		return st.EditField(models.FieldName, "Ada")
	}))

	snap, err := s.Snapshot(b)
	require.NoError(t, err)
	assert.Empty(t, snap.Form.Name)
}

func TestSessionService_UnknownSession(t *testing.T) {
	s := newSessions(t, time.Minute)
	err := s.With("nope", func(*view.State) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_WithPropagatesError(t *testing.T) {
	s := newSessions(t, time.Minute)
	id := s.Create()
	boom := errors.New("boom")
	assert.ErrorIs(t, s.With(id, func(*view.State) error { return boom }), boom)
}

func TestSessionService_SweepExpiresIdle(t *testing.T) {
	s := newSessions(t, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	idle := s.Create()
	now = now.Add(50 * time.Second)
	active := s.Create()

	now = now.Add(20 * time.Second)
	require.NoError(t, s.With(active, func(*view.State) error { return nil }))

	assert.Equal(t, 1, s.Sweep())
	assert.False(t, s.Exists(idle))
	assert.True(t, s.Exists(active))
}

func TestSessionService_ConcurrentAccess(t *testing.T) {
	s := newSessions(t, time.Minute)
	id := s.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tab := models.Tabs()[i%4]
			_ = s.With(id, func(st *view.State) error {
				return st.SelectTab(tab)
			})
			s.Sweep()
		}(i)
	}
	wg.Wait()
	assert.True(t, s.Exists(id))
}

func TestSessionService_RunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newSessions(t, time.Nanosecond)
	s.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Millisecond) }()

	require.Eventually(t, func() bool { return s.Count() == 0 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
