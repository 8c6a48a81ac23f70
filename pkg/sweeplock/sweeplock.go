package sweeplock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/promo-engagement/config"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ErrNotHeld when releasing or extending a lock owned by another holder or already expired
var ErrNotHeld = errors.New("sweep lock not held")

var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var extendScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// Connect creates a redis client and checks the connection
func Connect(ctx context.Context, conf config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        conf.Addr(),
		Password:    conf.Password,
		DB:          conf.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Locker grants a named lease to at most one scheduler replica at a time
type Locker struct {
	rdb goredis.UniversalClient
	ttl time.Duration
}

// New ...
func New(rdb goredis.UniversalClient, ttl time.Duration) *Locker {
	return &Locker{rdb: rdb, ttl: ttl}
}

// Lease is a held lock, identified by a random token
type Lease struct {
	locker *Locker
	key    string
	token  string
}

// TryAcquire returns ok = false without error when another holder owns the key
func (l *Locker) TryAcquire(ctx context.Context, key string) (*Lease, bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return &Lease{locker: l, key: key, token: token}, true, nil
}

// Extend resets the lease ttl
func (s *Lease) Extend(ctx context.Context) error {
	n, err := extendScript.Run(ctx, s.locker.rdb, []string{s.key}, s.token, s.locker.ttl.Milliseconds()).Int()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotHeld
	}
	return nil
}

// Release deletes the key only when still owned by this lease
func (s *Lease) Release(ctx context.Context) error {
	n, err := releaseScript.Run(ctx, s.locker.rdb, []string{s.key}, s.token).Int()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotHeld
	}
	return nil
}
