package sitemaps

import (
	"sync"
	"time"
)

// PageCache is an in-memory cache of published page items with TTL. It is
// the PageSource the assembler reads, so a sitemap request normally costs no
// database round trip.
type PageCache struct {
	mu      sync.RWMutex
	items   []ContentItem
	fetched time.Time
	ttl     time.Duration

	store         *Store
	baseURL       string
	excludedTypes map[string]bool
	requireSearch bool
}

// NewPageCache creates a PageCache backed by the given Store. Page URLs are
// built against baseURL; pages whose type appears in excludedTypes are
// marked TypeExcluded on their item view.
func NewPageCache(s *Store, ttl time.Duration, baseURL string, excludedTypes []string, requireSearch bool) *PageCache {
	excluded := make(map[string]bool, len(excludedTypes))
	for _, t := range excludedTypes {
		excluded[t] = true
	}
	return &PageCache{
		store:         s,
		ttl:           ttl,
		baseURL:       baseURL,
		excludedTypes: excluded,
		requireSearch: requireSearch,
	}
}

func (c *PageCache) valid() bool {
	return c.items != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// PublishedPages returns the item views of all live-stage pages. It tries a
// read lock first; only takes a write lock if a reload is needed.
func (c *PageCache) PublishedPages() ([]ContentItem, error) {
	c.mu.RLock()
	if c.valid() {
		items := c.items
		c.mu.RUnlock()
		return items, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.items, nil
	}
	pages, err := c.store.ListPublishedPages(c.requireSearch)
	if err != nil {
		return nil, err
	}
	items := make([]ContentItem, 0, len(pages))
	for _, p := range pages {
		items = append(items, c.itemOf(p))
	}
	c.items = items
	c.fetched = time.Now()
	return items, nil
}

func (c *PageCache) itemOf(p Page) ContentItem {
	return ContentItem{
		AbsoluteURL:   BuildURL(c.baseURL, p.Slug),
		CreatedAt:     p.CreatedAt,
		LastEdited:    p.LastEdited,
		RevisionCount: p.Revisions,
		Viewable:      p.CanView && p.Published,
		Priority:      p.Priority,
		ShowInSearch:  p.ShowInSearch,
		TypeExcluded:  c.excludedTypes[p.Type],
	}
}
