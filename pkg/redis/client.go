package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyNamespace   = "sf"
	checkoutPrefix = "checkout"
)

// compareAndDelete removes KEYS[1] only while it still holds ARGV[1].
const compareAndDelete = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

var errNotInitialized = errors.New("redis client not initialized")

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	SetNX(context.Context, string, any, time.Duration) *redis.BoolCmd
	Eval(context.Context, string, []string, ...any) *redis.Cmd
	Del(context.Context, ...string) *redis.IntCmd
}

// Client wraps the redis commands used for checkout coordination.
type Client struct {
	store cmdable
	raw   *redis.Client
}

// New connects to redis at addr and verifies connectivity. addr may also be
// a redis:// URL.
func New(ctx context.Context, addr string) (*Client, error) {
	opts, err := options(addr)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Client{store: raw, raw: raw}, nil
}

func options(addr string) (*redis.Options, error) {
	if addr == "" {
		return nil, errors.New("redis address is required")
	}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opts, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{Addr: addr}, nil
}

// SetNX sets a value only if the key does not exist yet.
func (c *Client) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if c.store == nil {
		return false, errNotInitialized
	}
	return c.store.SetNX(ctx, key, value, ttl).Result()
}

// DeleteIfEquals removes the key only while it holds value.
func (c *Client) DeleteIfEquals(ctx context.Context, key, value string) (bool, error) {
	if c.store == nil {
		return false, errNotInitialized
	}
	n, err := c.store.Eval(ctx, compareAndDelete, []string{key}, value).Int64()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	if c.store == nil {
		return errNotInitialized
	}
	return c.store.Del(ctx, keys...).Err()
}

func (c *Client) Ping(ctx context.Context) error {
	if c.store == nil {
		return errNotInitialized
	}
	return c.store.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if c.raw == nil {
		return nil
	}
	return c.raw.Close()
}

// CheckoutKey returns the namespaced lock key of a checkout attempt.
func (c *Client) CheckoutKey(idempotencyKey string) string {
	return c.buildKey(checkoutPrefix, idempotencyKey)
}

func (c *Client) buildKey(parts ...string) string {
	clean := []string{keyNamespace}
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			clean = append(clean, part)
		}
	}
	return strings.Join(clean, ":")
}

// CheckoutLocker serialises checkouts sharing an idempotency key across
// service instances. Each lock holds a random token so that a lock which
// expired and was taken over is never released by its former owner.
type CheckoutLocker struct {
	client *Client
	ttl    time.Duration
	tokens sync.Map
}

func NewCheckoutLocker(client *Client, ttl time.Duration) *CheckoutLocker {
	return &CheckoutLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *CheckoutLocker) Lock(ctx context.Context, key string) (bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.client.CheckoutKey(key), token, l.ttl)
	if err != nil || !ok {
		return false, err
	}
	l.tokens.Store(key, token)
	return true, nil
}

func (l *CheckoutLocker) Unlock(ctx context.Context, key string) error {
	token, ok := l.tokens.LoadAndDelete(key)
	if !ok {
		return nil
	}
	_, err := l.client.DeleteIfEquals(ctx, l.client.CheckoutKey(key), token.(string))
	return err
}
