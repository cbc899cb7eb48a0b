// Package session vigila la expiración del token de acceso y cierra la
// sesión en el instante exp del JWT.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/customer-portal/pkg/jwt"
	"github.com/jhoicas/customer-portal/pkg/logger"
)

// TokenStore donde vive el token de la sesión actual.
type TokenStore interface {
	Load() (string, error) // "" sin error si no hay sesión
	Save(token string) error
	Clear() error
}

// Timer lo mínimo que el watcher necesita de un temporizador.
type Timer interface {
	Stop() bool
}

// AfterFunc programa f tras d. time.AfterFunc en producción.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Watcher reprograma un único temporizador contra el exp del token guardado.
type Watcher struct {
	store    TokenStore
	secret   string
	onExpire func()
	now      func() time.Time
	after    AfterFunc
	log      *logger.Logger

	mu    sync.Mutex
	timer Timer
	gen   uint64
}

// Option configura el watcher.
type Option func(*Watcher)

// WithClock reemplaza time.Now y time.AfterFunc (pruebas).
func WithClock(now func() time.Time, after AfterFunc) Option {
	return func(w *Watcher) {
		w.now = now
		w.after = after
	}
}

// WithLogger agrega logging de expiraciones.
func WithLogger(log *logger.Logger) Option {
	return func(w *Watcher) { w.log = log }
}

// NewWatcher crea el watcher. onExpire se invoca una vez por expiración,
// después de limpiar el store.
func NewWatcher(store TokenStore, secret string, onExpire func(), opts ...Option) *Watcher {
	w := &Watcher{
		store:    store,
		secret:   secret,
		onExpire: onExpire,
		now:      time.Now,
		after:    realAfterFunc,
		log:      logger.Nop(),
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Schedule cancela el temporizador anterior y arma uno nuevo para el token
// actual. Sin token no hace nada; sin exp o ya expirado, expira de inmediato.
// Devuelve el exp programado (cero si no se programó nada).
func (w *Watcher) Schedule() (time.Time, error) {
	w.mu.Lock()
	w.cancelLocked()
	gen := w.gen

	token, err := w.store.Load()
	if err != nil {
		w.mu.Unlock()
		return time.Time{}, err
	}
	if token == "" {
		w.mu.Unlock()
		return time.Time{}, nil
	}

	now := w.now()
	exp, err := jwt.Expiry(w.secret, token, now)
	if err != nil {
		w.mu.Unlock()
		if errors.Is(err, jwt.ErrExpired) || errors.Is(err, jwt.ErrNoExpiry) {
			w.log.Info().Err(err).Msg("sesión expirada")
		} else {
			w.log.Warn().Err(err).Msg("token ilegible, se cierra la sesión")
		}
		w.expire(gen)
		return time.Time{}, nil
	}

	w.timer = w.after(exp.Sub(now), func() { w.expire(gen) })
	w.mu.Unlock()
	return exp, nil
}

// Stop cancela el temporizador pendiente, si lo hay.
func (w *Watcher) Stop() {
	w.mu.Lock()
	w.cancelLocked()
	w.mu.Unlock()
}

func (w *Watcher) cancelLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
}

// expire limpia el store e invoca onExpire, salvo que el temporizador que
// disparó ya haya sido reemplazado.
func (w *Watcher) expire(gen uint64) {
	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.gen++
	w.mu.Unlock()

	if err := w.store.Clear(); err != nil {
		w.log.Error().Err(err).Msg("no se pudo limpiar el token")
	}
	if w.onExpire != nil {
		w.onExpire()
	}
}
