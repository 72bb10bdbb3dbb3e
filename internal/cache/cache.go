package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache es un cache TTL sobre redis para respuestas de adaptadores
// externos (clima, lugares). Un *Cache nil es un cache deshabilitado:
// todo Get es un miss y todo Set es un no-op, asi los adaptadores no
// necesitan distinguir si redis esta configurado.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	// Un fallo al escribir el cache no es un error del caller.
	_ = c.rdb.Set(ctx, key, value, c.ttl).Err()
}
