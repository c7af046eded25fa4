package auth

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// TokenCache guarda credenciais com expiração por tempo de vida (TTL fixo a
// partir da inserção, não por ociosidade).
type TokenCache struct {
	cache *gocache.Cache
}

func NewTokenCache(ttl time.Duration) *TokenCache {
	return &TokenCache{
		cache: gocache.New(ttl, ttl),
	}
}

func (c *TokenCache) Get(key string) (string, bool) {
	v, found := c.cache.Get(key)
	if !found {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

// Set usa o TTL padrão do cache.
func (c *TokenCache) Set(key, token string) {
	c.cache.SetDefault(key, token)
}

// SetWithTTL sobrepõe o TTL padrão para uma entrada específica.
func (c *TokenCache) SetWithTTL(key, token string, ttl time.Duration) {
	c.cache.Set(key, token, ttl)
}

func (c *TokenCache) Invalidate(key string) {
	c.cache.Delete(key)
}

func (c *TokenCache) InvalidateAll() {
	c.cache.Flush()
}
