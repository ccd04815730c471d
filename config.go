package sitemaps

import "time"

// SiteConfig holds all configuration for a sitemaps app.
type SiteConfig struct {
	Name string // Site name (default "Site")
	URL  string // Canonical URL (default "http://localhost:3000")

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/pages.db")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	Dev          bool   // Dev environments never ping search engines
	PingEndpoint string // Search engine ping endpoint (default Google's)

	// ExcludedTypes lists page types never shown in the sitemap
	// (default: ErrorPage).
	ExcludedTypes []string

	// RelaxShowInSearch lifts the default policy that pages must be
	// explicitly marked show-in-search to be listed.
	RelaxShowInSearch bool

	PageCacheTTL time.Duration // Page cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Site"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/pages.db"
	}
	if c.PingEndpoint == "" {
		c.PingEndpoint = DefaultPingEndpoint
	}
	if c.ExcludedTypes == nil {
		c.ExcludedTypes = []string{"ErrorPage"}
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithExtraType opts a non-page content type into the sitemap. Entries for
// its items carry freq (monthly when empty); fetch loads the items.
func WithExtraType(typeID string, freq ChangeFreq, fetch ExtraFetchFunc) Option {
	return func(a *App) {
		a.Extras.Register(typeID, freq, fetch)
	}
}
