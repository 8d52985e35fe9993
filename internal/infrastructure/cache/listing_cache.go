// Package cache implementa un cache Redis para las respuestas del listado de
// productos. Cada página cacheada vive bajo una clave versionada: cualquier
// escritura sobre productos incrementa la versión del namespace, con lo que
// todas las páginas anteriores dejan de ser alcanzables y expiran por TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/catalogo-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const versionKey = "products:listings:version"

// redisCommands es el subconjunto de comandos de go-redis que usa el cache.
// *redis.Client lo satisface.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// ListingCache cache de listados con TTL e invalidación por versión.
// Es tolerante a fallos: un error de Redis se registra y se responde como
// cache miss, nunca bloquea la consulta a la base de datos.
type ListingCache struct {
	rdb redisCommands
	ttl time.Duration
	log *logger.Logger
}

// NewListingCache construye el cache. ttl es la vigencia de cada página cacheada.
func NewListingCache(rdb redisCommands, ttl time.Duration, log *logger.Logger) *ListingCache {
	return &ListingCache{rdb: rdb, ttl: ttl, log: log}
}

// Get busca la página cacheada para la clave canónica del filtro y la
// deserializa en dest. Devuelve false en miss o error.
func (c *ListingCache) Get(ctx context.Context, filterKey string, dest interface{}) bool {
	if c == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, c.key(ctx, filterKey)).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("cache de listados: fallo en GET")
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.log.Warn().Err(err).Msg("cache de listados: payload corrupto")
		return false
	}
	return true
}

// Set guarda la página bajo la versión vigente del namespace.
func (c *ListingCache) Set(ctx context.Context, filterKey string, value interface{}) {
	if c == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Msg("cache de listados: fallo al serializar")
		return
	}
	if err := c.rdb.Set(ctx, c.key(ctx, filterKey), b, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache de listados: fallo en SET")
	}
}

// Invalidate incrementa la versión del namespace. Las páginas cacheadas bajo
// versiones anteriores quedan huérfanas y expiran por su TTL.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Incr(ctx, versionKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache de listados: fallo al invalidar")
	}
}

func (c *ListingCache) key(ctx context.Context, filterKey string) string {
	ver, err := c.rdb.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		c.log.Warn().Err(err).Msg("cache de listados: fallo al leer versión")
	}
	return fmt.Sprintf("products:listings:v%d:%s", ver, filterKey)
}
