package keylock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL        = 5 * time.Second
	DefaultRetryDelay = 25 * time.Millisecond
	defaultKeyPrefix  = "lab_booking:lock:"
)

// unlockScript удаляет ключ только если он принадлежит владельцу токена
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// renewScript продлевает TTL, только если ключ принадлежит владельцу токена
var renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker блокировка на SET NX PX.
// TTL ограничивает время удержания, если процесс упал, не освободив ключ.
// Пока fn выполняется, ключ продлевается каждые ttl/3.
type RedisLocker struct {
	client     *redis.Client
	prefix     string
	ttl        time.Duration
	retryDelay time.Duration
}

// NewRedisLocker создает локер; нулевые ttl и retryDelay заменяются значениями по умолчанию
func NewRedisLocker(client *redis.Client, ttl, retryDelay time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	return &RedisLocker{
		client:     client,
		prefix:     defaultKeyPrefix,
		ttl:        ttl,
		retryDelay: retryDelay,
	}
}

// WithLock выполняет fn под распределенной блокировкой key
func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	redisKey := l.prefix + key
	token := uuid.NewString()

	if err := l.acquire(ctx, redisKey, token); err != nil {
		return err
	}
	bg := context.WithoutCancel(ctx)
	stop := l.keepAlive(bg, redisKey, token)
	defer func() {
		stop()
		l.release(bg, redisKey, token)
	}()

	return fn(ctx)
}

// keepAlive продлевает ключ до вызова stop или потери владения
func (l *RedisLocker) keepAlive(ctx context.Context, redisKey, token string) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		interval := l.ttl / 3
		if interval <= 0 {
			interval = l.ttl
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				renewed, err := renewScript.Run(ctx, l.client, []string{redisKey}, token, l.ttl.Milliseconds()).Int64()
				if err == nil && renewed == 0 {
					// ключ истек и перехвачен другим владельцем
					return
				}
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

func (l *RedisLocker) acquire(ctx context.Context, redisKey, token string) error {
	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, redisKey, ctx.Err())
			}
			return fmt.Errorf("%w: SETNX key=%s: %v", ErrBackend, redisKey, err)
		}
		if ok {
			return nil
		}

		timer := time.NewTimer(l.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, redisKey, ctx.Err())
		case <-timer.C:
		}
	}
}

// release ошибки игнорируются: ключ все равно истечет по TTL
func (l *RedisLocker) release(ctx context.Context, redisKey, token string) {
	_ = unlockScript.Run(ctx, l.client, []string{redisKey}, token).Err()
}
