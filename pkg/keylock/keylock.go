// Package keylock serializes critical sections per string key.
//
// Two backends are provided: LocalLocker keeps lock state in process memory,
// RedisLocker keeps it in Redis and renews the key while fn runs. RedisLocker
// only serializes replicas that also share the booking ledger; the in-memory
// ledger is per process. Both honour context cancellation while waiting for
// the lock; a timed-out wait never runs fn.
package keylock

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrLockTimeout возвращается, когда блокировку не удалось получить до отмены контекста
	ErrLockTimeout = errors.New("keylock: lock wait cancelled")

	// ErrBackend возвращается при ошибках хранилища блокировок
	ErrBackend = errors.New("keylock: backend error")
)

// Locker runs fn while holding an exclusive lock on key.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type waitLimited struct {
	inner   Locker
	timeout time.Duration
}

// WithWaitTimeout limits how long WithLock waits for the lock.
// The limit does not apply to fn, which receives the caller's context.
func WithWaitTimeout(inner Locker, timeout time.Duration) Locker {
	if timeout <= 0 {
		return inner
	}
	return &waitLimited{inner: inner, timeout: timeout}
}

func (w *waitLimited) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	waitCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	return w.inner.WithLock(waitCtx, key, func(context.Context) error {
		return fn(ctx)
	})
}
