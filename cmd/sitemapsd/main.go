// sitemapsd runs a standalone sitemaps server configured from environment
// variables. Most deployments embed the sitemaps package into their own app
// instead; this binary exists for demos and smoke testing.
package main

import (
	"log"
	"os"

	"github.com/eringen/sitemaps"
)

func main() {
	cfg := sitemaps.SiteConfig{
		Name:          sitemaps.EnvOr("SITE_NAME", "Site"),
		URL:           sitemaps.EnvOr("SITE_URL", "http://localhost:3000"),
		Addr:          sitemaps.EnvOr("ADDR", ":3000"),
		DatabasePath:  sitemaps.EnvOr("DATABASE_PATH", "data/pages.db"),
		AdminPassword: sitemaps.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: sitemaps.MustEnv("SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		Dev:           os.Getenv("DEV") == "true",
	}

	app := sitemaps.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("sitemapsd: %v", err)
	}
}
