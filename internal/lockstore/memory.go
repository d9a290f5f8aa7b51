package lockstore

import (
	"context"
	"sync"
	"time"

	"github.com/anagha-safaar/booking-engine/internal/domain"
)

// MemoryStore implements the LockStore contract in process, under one
// mutex. It backs tests and single-instance development runs; the
// atomicity guarantees match the Redis store.
type MemoryStore struct {
	mu    sync.Mutex
	locks map[string]*domain.BookingLock // item key -> lock
	byID  map[string]string              // lock id -> item key
	user  map[string]map[string]bool     // user id -> lock ids
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		locks: make(map[string]*domain.BookingLock),
		byID:  make(map[string]string),
		user:  make(map[string]map[string]bool),
	}
}

func (s *MemoryStore) AcquireLock(_ context.Context, lock *domain.BookingLock, now time.Time, _ time.Duration) (*domain.BookingLock, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := itemKey(lock.ItemKind, lock.ItemID)
	cur, ok := s.locks[key]
	if ok && !cur.Expired(now) {
		return copyLock(cur), false, nil
	}

	var prev *domain.BookingLock
	if ok {
		prev = copyLock(cur)
		s.removeLocked(key, cur)
	}
	s.storeLocked(key, lock)

	return prev, true, nil
}

func (s *MemoryStore) UpdateLock(_ context.Context, lock *domain.BookingLock, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := itemKey(lock.ItemKind, lock.ItemID)
	cur, ok := s.locks[key]
	if !ok || cur.ID != lock.ID {
		return false, nil
	}
	s.locks[key] = copyLock(lock)

	return true, nil
}

func (s *MemoryStore) DeleteLock(_ context.Context, kind domain.ItemKind, itemID, lockID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := itemKey(kind, itemID)
	cur, ok := s.locks[key]
	if !ok || cur.ID != lockID {
		return false, nil
	}
	s.removeLocked(key, cur)

	return true, nil
}

func (s *MemoryStore) GetLock(_ context.Context, kind domain.ItemKind, itemID string) (*domain.BookingLock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.locks[itemKey(kind, itemID)]
	if !ok {
		return nil, nil
	}
	return copyLock(cur), nil
}

func (s *MemoryStore) GetLockByID(_ context.Context, lockID string) (*domain.BookingLock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.byID[lockID]
	if !ok {
		return nil, nil
	}
	cur, ok := s.locks[key]
	if !ok || cur.ID != lockID {
		return nil, nil
	}
	return copyLock(cur), nil
}

func (s *MemoryStore) ListLocks(_ context.Context) ([]*domain.BookingLock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	locks := make([]*domain.BookingLock, 0, len(s.locks))
	for _, l := range s.locks {
		locks = append(locks, copyLock(l))
	}
	return locks, nil
}

func (s *MemoryStore) ListUserLocks(_ context.Context, userID string) ([]*domain.BookingLock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var locks []*domain.BookingLock
	for id := range s.user[userID] {
		key, ok := s.byID[id]
		if !ok {
			continue
		}
		if cur, ok := s.locks[key]; ok && cur.ID == id {
			locks = append(locks, copyLock(cur))
		}
	}
	return locks, nil
}

func (s *MemoryStore) storeLocked(key string, lock *domain.BookingLock) {
	s.locks[key] = copyLock(lock)
	s.byID[lock.ID] = key
	if s.user[lock.UserID] == nil {
		s.user[lock.UserID] = make(map[string]bool)
	}
	s.user[lock.UserID][lock.ID] = true
}

func (s *MemoryStore) removeLocked(key string, lock *domain.BookingLock) {
	delete(s.locks, key)
	delete(s.byID, lock.ID)
	delete(s.user[lock.UserID], lock.ID)
}

func copyLock(l *domain.BookingLock) *domain.BookingLock {
	c := *l
	return &c
}
