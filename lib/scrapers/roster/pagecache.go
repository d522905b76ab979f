package roster

import (
	"sync"
	"time"
)

const DefaultPageLifetime = time.Minute * 60

type cachedPage struct {
	content   string
	fetchedAt time.Time
}

// PageCache is a time-boxed in-memory store of raw page content keyed by
// URL. Expired entries are not proactively purged, they are superseded
// by the next successful Put.
type PageCache struct {
	mu       sync.RWMutex
	lifetime time.Duration
	pages    map[string]cachedPage
}

func NewPageCache(lifetime time.Duration) *PageCache {
	if lifetime <= 0 {
		lifetime = DefaultPageLifetime
	}
	return &PageCache{
		lifetime: lifetime,
		pages:    map[string]cachedPage{},
	}
}

func (c *PageCache) Get(url string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	page, ok := c.pages[url]
	if !ok {
		return "", false
	}
	if time.Since(page.fetchedAt) >= c.lifetime {
		return "", false
	}
	return page.content, true
}

func (c *PageCache) Put(url, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages[url] = cachedPage{
		content:   content,
		fetchedAt: time.Now(),
	}
}

func (c *PageCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

func (c *PageCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.pages))
	for url := range c.pages {
		keys = append(keys, url)
	}
	return keys
}
