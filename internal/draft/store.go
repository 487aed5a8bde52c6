// Package draft persists per-session form snapshots: the unsubmitted
// event-creation draft and the profile editor's pre-edit values.  Redis is
// the backing store when available; without it the store degrades to an
// in-process map so the feature keeps working on a single instance.
package draft

import (
    "context"
    "encoding/json"
    "net/url"
    "sync"
    "time"

    "github.com/redis/go-redis/v9"
)

// Store saves serialized snapshots under string keys with a TTL.
type Store struct {
    rdb *redis.Client
    ttl time.Duration

    mu  sync.Mutex
    mem map[string]memEntry
}

type memEntry struct {
    data    []byte
    expires time.Time
}

// NewStore builds a Store.  rdb may be nil; the store then keeps
// everything in memory.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
    return &Store{rdb: rdb, ttl: ttl, mem: make(map[string]memEntry)}
}

// SaveJSON stores v under key, replacing any previous snapshot.
func (s *Store) SaveJSON(ctx context.Context, key string, v any) error {
    b, err := json.Marshal(v)
    if err != nil {
        return err
    }
    if s.rdb != nil {
        return s.rdb.Set(ctx, key, b, s.ttl).Err()
    }
    s.mu.Lock()
    s.mem[key] = memEntry{data: b, expires: time.Now().Add(s.ttl)}
    s.mu.Unlock()
    return nil
}

// LoadJSON reads the snapshot under key into out.  The boolean reports
// whether a snapshot existed; a missing one is not an error.
func (s *Store) LoadJSON(ctx context.Context, key string, out any) (bool, error) {
    var b []byte
    if s.rdb != nil {
        raw, err := s.rdb.Get(ctx, key).Bytes()
        if err == redis.Nil {
            return false, nil
        }
        if err != nil {
            return false, err
        }
        b = raw
    } else {
        s.mu.Lock()
        e, ok := s.mem[key]
        if ok && time.Now().After(e.expires) {
            delete(s.mem, key)
            ok = false
        }
        s.mu.Unlock()
        if !ok {
            return false, nil
        }
        b = e.data
    }
    return true, json.Unmarshal(b, out)
}

// Clear removes the snapshot stored under key, if any.
func (s *Store) Clear(ctx context.Context, key string) error {
    if s.rdb != nil {
        return s.rdb.Del(ctx, key).Err()
    }
    s.mu.Lock()
    delete(s.mem, key)
    s.mu.Unlock()
    return nil
}

// Save stores flattened form values.  Kept as the natural shape of the
// event-form draft.
func (s *Store) Save(ctx context.Context, key string, values url.Values) error {
    return s.SaveJSON(ctx, key, values)
}

// Load returns flattened form values stored under key.
func (s *Store) Load(ctx context.Context, key string) (url.Values, bool, error) {
    var v url.Values
    ok, err := s.LoadJSON(ctx, key, &v)
    if err != nil || !ok {
        return nil, false, err
    }
    return v, true, nil
}
