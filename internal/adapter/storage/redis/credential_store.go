package redis

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CredentialStore implements ports.CredentialStore on Redis so several CLI
// invocations share one platform session. Cookies are kept per host in a hash
// (field = cookie name) that expires ttl after the last write.
type CredentialStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewCredentialStore creates a new Redis-backed credential store.
func NewCredentialStore(client *goredis.Client, ttl time.Duration) *CredentialStore {
	return &CredentialStore{
		client: client,
		prefix: "cookies:",
		ttl:    ttl,
	}
}

// Cookies returns the stored cookies for u's host.
func (s *CredentialStore) Cookies(ctx context.Context, u *url.URL) ([]*http.Cookie, error) {
	values, err := s.client.HGetAll(ctx, s.key(u)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis cookies get: %w", err)
	}

	cookies := make([]*http.Cookie, 0, len(values))
	for name, value := range values {
		cookies = append(cookies, &http.Cookie{Name: name, Value: value})
	}
	return cookies, nil
}

// SetCookies stores cookies for u's host. Cookies the server expires are removed.
func (s *CredentialStore) SetCookies(ctx context.Context, u *url.URL, cookies []*http.Cookie) error {
	key := s.key(u)
	now := time.Now()

	pipe := s.client.TxPipeline()
	for _, c := range cookies {
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(now)) {
			pipe.HDel(ctx, key, c.Name)
			continue
		}
		pipe.HSet(ctx, key, c.Name, c.Value)
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis cookies set: %w", err)
	}
	return nil
}

func (s *CredentialStore) key(u *url.URL) string {
	return s.prefix + u.Host
}
