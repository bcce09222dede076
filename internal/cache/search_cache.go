package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/rueidis"
)

// SearchCache keeps recent search envelopes in Redis for a short TTL so
// repeated queries from the global search box skip the four table scans.
// It is optional: a nil *SearchCache is a valid always-miss cache.
type SearchCache struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewSearchCache(client rueidis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{client: client, ttl: ttl}
}

func key(term string) string {
	return "search:" + strings.ToLower(term)
}

func (c *SearchCache) Get(ctx context.Context, term string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Do(ctx, c.client.B().Get().Key(key(term)).Build()).AsBytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *SearchCache) Set(ctx context.Context, term string, payload []byte) error {
	if c == nil {
		return nil
	}
	return c.client.Do(
		ctx,
		c.client.B().Set().
			Key(key(term)).
			Value(rueidis.BinaryString(payload)).
			Ex(c.ttl).
			Build(),
	).Error()
}
