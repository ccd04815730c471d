// Package sitemaps is an XML sitemap module for content sites built with Go
// and Echo. It lists published pages and registered extra content types,
// estimates per-URL change frequency from edit history, filters by
// visibility, host, and priority, and optionally pings a search engine when
// a page is published or unpublished.
//
// The module ships its own SQLite-backed page store and a small
// session-protected admin surface for editing pages and toggling the sitemap
// and ping flags. Host applications customize the admin templates via the
// Views struct and add their own routes with WithCustomRoutes.
package sitemaps

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central sitemaps application. It wires together the store,
// cache, registry, assembler, notifier, handlers, and middleware.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Store     *Store
	Cache     *PageCache
	State     *State
	Extras    *ExtraRegistry
	Assembler *Assembler
	Notifier  *Notifier
	Views     Views

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
}

// New creates a new sitemaps App with the given configuration. Extra content
// types are registered through options or on a.Extras before Start.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		State:  NewState(),
		Extras: NewExtraRegistry(),
		Views:  DefaultViews(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, cache, assembler, middleware, and routes,
// then starts the server.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) init() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("sitemaps: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("sitemaps: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("sitemaps: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewPageCache(store, a.Config.PageCacheTTL, a.Config.URL,
		a.Config.ExcludedTypes, !a.Config.RelaxShowInSearch)

	a.Assembler = &Assembler{
		Pages:  a.Cache,
		Extras: a.Extras,
		Filter: Filter{RequireShowInSearch: !a.Config.RelaxShowInSearch},
	}

	a.Notifier = &Notifier{
		Endpoint: a.Config.PingEndpoint,
		State:    a.State,
	}

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/page/:slug/", a.handleAdminDelete)
	e.POST("/admin/publish/:slug/", a.handleAdminPublish)
	e.POST("/admin/unpublish/:slug/", a.handleAdminUnpublish)

	e.POST("/admin/sitemap/enable/", a.handleToggle((*State).EnableSitemap))
	e.POST("/admin/sitemap/disable/", a.handleToggle((*State).DisableSitemap))
	e.POST("/admin/ping/enable/", a.handleToggle((*State).EnablePing))
	e.POST("/admin/ping/disable/", a.handleToggle((*State).DisablePing))
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("sitemaps: required environment variable %s is not set", key)
	}
	return v
}
