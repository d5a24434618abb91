package lookupcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/sports-ledger/internal/classifier/sport"
)

// DefaultNegativeTTL limita a vida de uma entrada "sem sinal" no Redis
const DefaultNegativeTTL = 24 * time.Hour

// Redis compartilha o cache de consultas entre réplicas do serviço.
// Acertos não expiram; entradas negativas expiram após NegativeTTL para que
// uma queda do provedor não sobreviva a todos os deploys.
type Redis struct {
	Client      *redis.Client
	Prefix      string
	NegativeTTL time.Duration // 0 = sem expiração
}

// NewRedis cria o cache Redis com o prefixo e o TTL negativo padrão
func NewRedis(c *redis.Client) *Redis {
	return &Redis{Client: c, Prefix: "sportsdb:team:", NegativeTTL: DefaultNegativeTTL}
}

// ErrUnknownSport indica um valor gravado fora da enumeração de esportes
var ErrUnknownSport = errors.New("unknown sport")

func (r *Redis) key(k string) string { return r.Prefix + k }

func (r *Redis) Get(ctx context.Context, key string) (Entry, bool, error) {
	b, err := r.Client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	var e Entry
	if err := json.Unmarshal(b, &e); err != nil {
		return Entry{}, false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if e.Matched {
		if _, ok := sport.Parse(string(e.Sport)); !ok {
			return Entry{}, false, fmt.Errorf("decode cache entry %s: %w: %q", key, ErrUnknownSport, e.Sport)
		}
	}
	return e, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, e Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	var ttl time.Duration
	if !e.Matched {
		ttl = r.NegativeTTL
	}
	if err := r.Client.Set(ctx, r.key(key), b, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
