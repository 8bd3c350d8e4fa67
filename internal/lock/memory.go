package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryLocker implements Locker with a map guarded by a mutex. Locks are
// visible to the current process only.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]lockEntry
	now   func() time.Time
}

type lockEntry struct {
	expiresAt time.Time
	token     string
}

// NewMemoryLocker creates an empty in-memory locker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		locks: make(map[string]lockEntry),
		now:   time.Now,
	}
}

// Acquire attempts to acquire a lock.
func (m *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if entry, exists := m.locks[key]; exists && now.Before(entry.expiresAt) {
		return "", false, nil
	}

	// expired entries are simply overwritten
	token := uuid.NewString()
	m.locks[key] = lockEntry{
		expiresAt: now.Add(ttl),
		token:     token,
	}

	return token, true, nil
}

// AcquireWithRetry attempts to acquire a lock with retries.
func (m *MemoryLocker) AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (string, bool, error) {
	return acquireWithRetry(ctx, m, key, ttl, maxRetries, retryDelay)
}

// Release releases a lock held with token.
func (m *MemoryLocker) Release(ctx context.Context, key, token string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[key]
	if !exists || entry.token != token {
		return false, nil
	}

	delete(m.locks, key)
	return true, nil
}

// Extend extends the TTL of a held lock.
func (m *MemoryLocker) Extend(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	entry, exists := m.locks[key]
	if !exists || entry.token != token {
		return false, nil
	}
	if !now.Before(entry.expiresAt) {
		delete(m.locks, key)
		return false, nil
	}

	entry.expiresAt = now.Add(ttl)
	m.locks[key] = entry
	return true, nil
}

// IsHeld checks if a lock is currently held.
func (m *MemoryLocker) IsHeld(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[key]
	if !exists {
		return false, nil
	}
	if !m.now().Before(entry.expiresAt) {
		delete(m.locks, key)
		return false, nil
	}

	return true, nil
}

// acquireWithRetry is shared by the Locker implementations.
func acquireWithRetry(ctx context.Context, l Locker, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (string, bool, error) {
	for i := 0; i <= maxRetries; i++ {
		token, ok, err := l.Acquire(ctx, key, ttl)
		if err != nil {
			return "", false, err
		}
		if ok {
			return token, true, nil
		}

		if i < maxRetries {
			timer := time.NewTimer(retryDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return "", false, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return "", false, nil
}

var _ Locker = (*MemoryLocker)(nil)
