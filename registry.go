package sitemaps

import "sync"

// ExtraFetchFunc loads all instances of a registered extra type from
// wherever the host application keeps them.
type ExtraFetchFunc func() ([]ContentItem, error)

// ExtraRegistration pairs a content-type identifier with the change
// frequency its sitemap entries carry and the function that fetches its
// instances.
type ExtraRegistration struct {
	Type       string
	ChangeFreq ChangeFreq
	Fetch      ExtraFetchFunc
}

// ExtraRegistry holds the non-page content types opted into the sitemap.
// It is constructed by the App and populated during application startup;
// registrations live for the process lifetime.
type ExtraRegistry struct {
	mu     sync.RWMutex
	order  []string
	byType map[string]ExtraRegistration
}

// NewExtraRegistry returns an empty registry.
func NewExtraRegistry() *ExtraRegistry {
	return &ExtraRegistry{byType: make(map[string]ExtraRegistration)}
}

// Register adds a content type to the sitemap. Registration order is
// preserved in Registrations; re-registering an already known type is a
// no-op. An empty freq defaults to monthly.
func (r *ExtraRegistry) Register(typeID string, freq ChangeFreq, fetch ExtraFetchFunc) {
	if freq == "" {
		freq = FreqMonthly
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byType[typeID]; ok {
		return
	}
	r.byType[typeID] = ExtraRegistration{Type: typeID, ChangeFreq: freq, Fetch: fetch}
	r.order = append(r.order, typeID)
}

// IsRegistered reports whether typeID has been registered.
func (r *ExtraRegistry) IsRegistered(typeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byType[typeID]
	return ok
}

// Registrations returns all registrations in registration order.
func (r *ExtraRegistry) Registrations() []ExtraRegistration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := make([]ExtraRegistration, 0, len(r.order))
	for _, id := range r.order {
		regs = append(regs, r.byType[id])
	}
	return regs
}
