package lockstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anagha-safaar/booking-engine/internal/domain"
)

const (
	lockKeyPrefix   = "booking:lock:"
	lockIDKeyPrefix = "booking:lockid:"
	userKeyPrefix   = "booking:userlocks:"
)

// defaultGrace is how long a logically expired record stays readable
// so the sweep can reclaim its inventory before Redis drops the key.
const defaultGrace = 30 * time.Minute

// envelope wraps the lock JSON with the fields the Lua scripts need
// to compare without decoding the full payload structure.
type envelope struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	ExpiresAt int64               `json:"expires_at_ms"`
	Lock      *domain.BookingLock `json:"lock"`
}

// acquire: set iff absent or logically expired; returns {1, prev|false}
// on success and {0, current} when a live lock holds the key.
var acquireScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
  local env = cjson.decode(cur)
  if tonumber(env.expires_at_ms) > tonumber(ARGV[2]) then
    return {0, cur}
  end
  redis.call('DEL', ARGV[5] .. env.id)
  redis.call('SREM', ARGV[6] .. env.user_id, env.id)
  redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
  redis.call('SET', ARGV[5] .. ARGV[4], KEYS[1], 'PX', ARGV[3])
  redis.call('SADD', ARGV[6] .. ARGV[7], ARGV[4])
  return {1, cur}
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
redis.call('SET', ARGV[5] .. ARGV[4], KEYS[1], 'PX', ARGV[3])
redis.call('SADD', ARGV[6] .. ARGV[7], ARGV[4])
return {1, false}
`)

// update: replace iff the stored record still carries the lock id.
var updateScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if not cur then return 0 end
local env = cjson.decode(cur)
if env.id ~= ARGV[1] then return 0 end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
redis.call('PEXPIRE', KEYS[2], ARGV[3])
return 1
`)

// delete: remove iff the stored record still carries the lock id.
var deleteScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if not cur then return 0 end
local env = cjson.decode(cur)
if env.id ~= ARGV[1] then return 0 end
redis.call('DEL', KEYS[1], KEYS[2])
redis.call('SREM', KEYS[3], ARGV[1])
return 1
`)

// RedisStore keeps the lock set in Redis. Locks are keyed by item for
// O(1) existence checks, with a lock-id index for direct lookups and
// a per-user set for GetUserLocks.
type RedisStore struct {
	client *redis.Client
	grace  time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, grace: defaultGrace}
}

func itemKey(kind domain.ItemKind, itemID string) string {
	return lockKeyPrefix + string(kind) + ":" + itemID
}

func (s *RedisStore) AcquireLock(ctx context.Context, lock *domain.BookingLock, now time.Time, ttl time.Duration) (*domain.BookingLock, bool, error) {
	payload, err := json.Marshal(envelope{
		ID:        lock.ID,
		UserID:    lock.UserID,
		ExpiresAt: lock.ExpiresAt.UnixMilli(),
		Lock:      lock,
	})
	if err != nil {
		return nil, false, fmt.Errorf("marshal lock: %w", err)
	}

	res, err := acquireScript.Run(ctx, s.client,
		[]string{itemKey(lock.ItemKind, lock.ItemID)},
		payload,
		now.UnixMilli(),
		(ttl + s.grace).Milliseconds(),
		lock.ID,
		lockIDKeyPrefix,
		userKeyPrefix,
		lock.UserID,
	).Slice()
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock: %w", err)
	}

	acquired := res[0].(int64) == 1
	var prev *domain.BookingLock
	if raw, ok := res[1].(string); ok {
		prev, err = decode([]byte(raw))
		if err != nil {
			return nil, acquired, err
		}
	}
	if !acquired {
		return prev, false, nil
	}
	return prev, true, nil
}

func (s *RedisStore) UpdateLock(ctx context.Context, lock *domain.BookingLock, ttl time.Duration) (bool, error) {
	payload, err := json.Marshal(envelope{
		ID:        lock.ID,
		UserID:    lock.UserID,
		ExpiresAt: lock.ExpiresAt.UnixMilli(),
		Lock:      lock,
	})
	if err != nil {
		return false, fmt.Errorf("marshal lock: %w", err)
	}

	n, err := updateScript.Run(ctx, s.client,
		[]string{itemKey(lock.ItemKind, lock.ItemID), lockIDKeyPrefix + lock.ID},
		lock.ID,
		payload,
		(ttl + s.grace).Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("update lock: %w", err)
	}
	return n == 1, nil
}

func (s *RedisStore) DeleteLock(ctx context.Context, kind domain.ItemKind, itemID, lockID string) (bool, error) {
	// Read first to learn the owner's index key; the script still
	// compares the lock id, so a concurrent takeover returns 0 here.
	cur, err := s.GetLock(ctx, kind, itemID)
	if err != nil {
		return false, err
	}
	if cur == nil || cur.ID != lockID {
		return false, nil
	}

	n, err := deleteScript.Run(ctx, s.client,
		[]string{itemKey(kind, itemID), lockIDKeyPrefix + lockID, userKeyPrefix + cur.UserID},
		lockID,
	).Int()
	if err != nil {
		return false, fmt.Errorf("delete lock: %w", err)
	}
	return n == 1, nil
}

func (s *RedisStore) GetLock(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.BookingLock, error) {
	raw, err := s.client.Get(ctx, itemKey(kind, itemID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get lock: %w", err)
	}
	return decode(raw)
}

func (s *RedisStore) GetLockByID(ctx context.Context, lockID string) (*domain.BookingLock, error) {
	key, err := s.client.Get(ctx, lockIDKeyPrefix+lockID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve lock id: %w", err)
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get lock: %w", err)
	}

	lock, err := decode(raw)
	if err != nil {
		return nil, err
	}
	// The item key may have been taken over by a newer lock.
	if lock != nil && lock.ID != lockID {
		return nil, nil
	}
	return lock, nil
}

func (s *RedisStore) ListLocks(ctx context.Context) ([]*domain.BookingLock, error) {
	var locks []*domain.BookingLock

	iter := s.client.Scan(ctx, 0, lockKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		raw, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("get lock: %w", err)
		}
		lock, err := decode(raw)
		if err != nil {
			return nil, err
		}
		locks = append(locks, lock)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan locks: %w", err)
	}

	return locks, nil
}

func (s *RedisStore) ListUserLocks(ctx context.Context, userID string) ([]*domain.BookingLock, error) {
	ids, err := s.client.SMembers(ctx, userKeyPrefix+userID).Result()
	if err != nil {
		return nil, fmt.Errorf("list user locks: %w", err)
	}

	var locks []*domain.BookingLock
	for _, id := range ids {
		lock, err := s.GetLockByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if lock == nil {
			// Stale index entry, drop it opportunistically.
			s.client.SRem(ctx, userKeyPrefix+userID, id)
			continue
		}
		locks = append(locks, lock)
	}

	return locks, nil
}

func decode(raw []byte) (*domain.BookingLock, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal lock: %w", err)
	}
	return env.Lock, nil
}
