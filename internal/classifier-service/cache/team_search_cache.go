package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 24 * time.Hour

// Cache guarda respostas da busca de times no Redis
type Cache struct {
	R   *redis.Client
	TTL time.Duration
}

func New(r *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{R: r, TTL: ttl}
}

// keyTeamSearch: "teams:search:<sport>:<query>" ou "teams:search:<query>", tudo em minúsculas
func keyTeamSearch(query, sport string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	s := strings.ToLower(strings.TrimSpace(sport))
	if s == "" {
		return "teams:search:" + q
	}
	return "teams:search:" + s + ":" + q
}

func (c *Cache) GetTeams(ctx context.Context, query, sport string, dst any) (bool, error) {
	b, err := c.R.Get(ctx, keyTeamSearch(query, sport)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get team search: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("decode team search: %w", err)
	}
	return true, nil
}

func (c *Cache) SetTeams(ctx context.Context, query, sport string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.R.Set(ctx, keyTeamSearch(query, sport), b, c.TTL).Err()
}
