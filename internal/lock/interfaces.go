// Package lock serializes mutations of a single box.
//
// A box is persisted as one document, so two concurrent slot writes on the
// same box would race. Locks are taken per box id: in process memory for a
// single node, in Redis when several server instances share a database.
package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired is returned by [Lock.Acquire] when the key stays held by
// another owner after all retries.
var ErrNotAcquired = errors.New("lock is held by another owner")

// Locker is a keyed mutual exclusion with expiring ownership.
//
// Acquire returns an owner token; Release and Extend only act when the key
// is still held with that token, so an owner whose lock expired cannot free
// a lock taken over by somebody else.
type Locker interface {
	// Acquire tries to take key once. ok is false when the key is held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)

	// AcquireWithRetry calls Acquire up to maxRetries+1 times, sleeping
	// retryDelay between attempts.
	AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (token string, ok bool, err error)

	// Release frees key if it is held with token.
	Release(ctx context.Context, key, token string) (bool, error)

	// Extend moves the expiry of a held key ttl into the future.
	Extend(ctx context.Context, key, token string, ttl time.Duration) (bool, error)

	// IsHeld reports whether anybody holds key.
	IsHeld(ctx context.Context, key string) (bool, error)
}

// Options configures how a [Lock] is acquired.
type Options struct {
	TTL        time.Duration
	Retries    int
	RetryDelay time.Duration
}

// Lock is one held (or not yet held) key.
type Lock struct {
	locker Locker
	key    string
	token  string
	held   bool
}

// NewLock creates a Lock for key. Nothing is acquired until Acquire.
func NewLock(locker Locker, key string) *Lock {
	return &Lock{
		locker: locker,
		key:    key,
	}
}

// Acquire takes the lock with retries. It returns [ErrNotAcquired] when the
// key stayed busy.
func (l *Lock) Acquire(ctx context.Context, opts Options) error {
	token, ok, err := l.locker.AcquireWithRetry(ctx, l.key, opts.TTL, opts.Retries, opts.RetryDelay)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAcquired
	}

	l.token = token
	l.held = true
	return nil
}

// Release frees the lock. Releasing a lock that is not held is a no-op.
func (l *Lock) Release(ctx context.Context) error {
	if !l.held {
		return nil
	}

	_, err := l.locker.Release(ctx, l.key, l.token)
	l.held = false
	l.token = ""
	return err
}

// Key returns the locked key.
func (l *Lock) Key() string {
	return l.key
}

// IsHeld returns whether the lock is held by this instance.
func (l *Lock) IsHeld() bool {
	return l.held
}

// Keys builds lock keys.
var Keys = lockKeys{}

type lockKeys struct{}

// Box returns the key that guards slot mutations of one box.
func (lockKeys) Box(boxID string) string {
	return "lock:box:" + boxID
}
