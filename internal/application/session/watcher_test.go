package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-portal/internal/application/session"
	"github.com/jhoicas/customer-portal/pkg/jwt"
)

const secret = "watcher-secret"

type memStore struct {
	mu      sync.Mutex
	token   string
	cleared int
}

func (s *memStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *memStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.cleared++
	return nil
}

// fakeTimers registra los temporizadores armados; Fire dispara el último.
type fakeTimers struct {
	armed []*fakeTimer
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (ft *fakeTimers) after(d time.Duration, f func()) session.Timer {
	t := &fakeTimer{d: d, f: f}
	ft.armed = append(ft.armed, t)
	return t
}

func newWatcher(t *testing.T, store *memStore, fired *int) (*session.Watcher, *fakeTimers) {
	t.Helper()
	timers := &fakeTimers{}
	w := session.NewWatcher(store, secret, func() { *fired++ },
		session.WithClock(time.Now, timers.after))
	return w, timers
}

func token(t *testing.T, ttl time.Duration) string {
	t.Helper()
	tok, err := jwt.Generate(secret, "u1", "user", ttl)
	require.NoError(t, err)
	return tok
}

func TestSchedule_SinToken(t *testing.T) {
	var fired int
	store := &memStore{}
	w, timers := newWatcher(t, store, &fired)

	exp, err := w.Schedule()
	require.NoError(t, err)
	assert.True(t, exp.IsZero())
	assert.Empty(t, timers.armed)
	assert.Zero(t, fired)
	assert.Zero(t, store.cleared)
}

func TestSchedule_TokenExpirado_CierraYa(t *testing.T) {
	var fired int
	store := &memStore{token: token(t, -time.Minute)}
	w, timers := newWatcher(t, store, &fired)

	_, err := w.Schedule()
	require.NoError(t, err)
	assert.Empty(t, timers.armed)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, store.cleared)
}

func TestSchedule_TokenIlegible_CierraYa(t *testing.T) {
	var fired int
	store := &memStore{token: "basura"}
	w, _ := newWatcher(t, store, &fired)

	_, err := w.Schedule()
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestSchedule_ArmaEnExp(t *testing.T) {
	var fired int
	store := &memStore{token: token(t, time.Hour)}
	w, timers := newWatcher(t, store, &fired)

	exp, err := w.Schedule()
	require.NoError(t, err)
	require.Len(t, timers.armed, 1)
	assert.InDelta(t, time.Hour.Seconds(), timers.armed[0].d.Seconds(), 2)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)
	assert.Zero(t, fired)

	timers.armed[0].f()
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, store.cleared)
}

func TestSchedule_ReprogramarCancelaAnterior(t *testing.T) {
	var fired int
	store := &memStore{token: token(t, time.Hour)}
	w, timers := newWatcher(t, store, &fired)

	_, err := w.Schedule()
	require.NoError(t, err)
	_, err = w.Schedule()
	require.NoError(t, err)

	require.Len(t, timers.armed, 2)
	assert.True(t, timers.armed[0].stopped)

	// un disparo tardío del temporizador reemplazado no cierra la sesión
	timers.armed[0].f()
	assert.Zero(t, fired)

	timers.armed[1].f()
	timers.armed[1].f()
	assert.Equal(t, 1, fired)
}

func TestStop_CancelaPendiente(t *testing.T) {
	var fired int
	store := &memStore{token: token(t, time.Hour)}
	w, timers := newWatcher(t, store, &fired)

	_, err := w.Schedule()
	require.NoError(t, err)
	w.Stop()

	assert.True(t, timers.armed[0].stopped)
	timers.armed[0].f()
	assert.Zero(t, fired)
	assert.NotEmpty(t, store.token)
}

func TestWatcher_TemporizadorReal(t *testing.T) {
	done := make(chan struct{})
	store := &memStore{token: token(t, 1500*time.Millisecond)}
	w := session.NewWatcher(store, secret, func() { close(done) })

	_, err := w.Schedule()
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("la sesión no expiró")
	}
	tok, _ := store.Load()
	assert.Empty(t, tok)
}
