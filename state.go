package sitemaps

import "sync/atomic"

// State holds the two process-wide feature flags: whether the sitemap is
// served at all, and whether publish events ping search engines. Toggles are
// administrative and rare, but requests read the flags concurrently, so both
// are atomics.
type State struct {
	sitemap atomic.Bool
	ping    atomic.Bool
}

// NewState returns the default policy: sitemap enabled, ping disabled.
func NewState() *State {
	s := &State{}
	s.sitemap.Store(true)
	return s
}

// EnableSitemap turns the sitemap endpoint on.
func (s *State) EnableSitemap() { s.sitemap.Store(true) }

// DisableSitemap turns the sitemap endpoint off; requests get a 405.
func (s *State) DisableSitemap() { s.sitemap.Store(false) }

// SitemapEnabled reports whether the sitemap endpoint is on.
func (s *State) SitemapEnabled() bool { return s.sitemap.Load() }

// EnablePing turns on search engine notification on publish events.
func (s *State) EnablePing() { s.ping.Store(true) }

// DisablePing turns off search engine notification.
func (s *State) DisablePing() { s.ping.Store(false) }

// PingEnabled reports whether publish events notify search engines.
func (s *State) PingEnabled() bool { return s.ping.Load() }
