package sitemaps

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := SiteConfig{
		URL:           "http://localhost:3000",
		DatabasePath:  filepath.Join(t.TempDir(), "pages.db"),
		AdminPassword: "secret",
		SessionSecret: "0123456789abcdef",
	}
	a := New(cfg)
	if err := a.init(); err != nil {
		t.Fatalf("app init failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func get(a *App, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func savePublishedPage(t *testing.T, a *App, slug string) {
	t.Helper()
	show := true
	err := a.Store.SavePage(Page{
		Slug:         slug,
		Title:        slug,
		CanView:      true,
		Published:    true,
		ShowInSearch: &show,
	})
	if err != nil {
		t.Fatalf("SavePage(%s) failed: %v", slug, err)
	}
	a.Cache.Invalidate()
}

func TestSitemapEndpoint(t *testing.T) {
	a := newTestApp(t)
	savePublishedPage(t, a, "about")
	savePublishedPage(t, a, "contact")

	rec := get(a, "http://localhost:3000/sitemap.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != `application/xml; charset="utf-8"` {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		"<loc>http://localhost:3000/about</loc>",
		"<loc>http://localhost:3000/contact</loc>",
		"<changefreq>always</changefreq>",
		"<priority>1.0</priority>",
		"<lastmod>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestSitemapEndpointDisabled(t *testing.T) {
	a := newTestApp(t)
	savePublishedPage(t, a, "about")
	a.State.DisableSitemap()

	rec := get(a, "http://localhost:3000/sitemap.xml")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "<urlset") {
		t.Error("disabled sitemap should not emit XML")
	}

	a.State.EnableSitemap()
	if rec := get(a, "http://localhost:3000/sitemap.xml"); rec.Code != http.StatusOK {
		t.Errorf("status after re-enable = %d, want 200", rec.Code)
	}
}

func TestSitemapExcludesDraftsAndHiddenPages(t *testing.T) {
	a := newTestApp(t)
	savePublishedPage(t, a, "visible")

	no := false
	if err := a.Store.SavePage(Page{Slug: "hidden", Title: "Hidden", CanView: true, Published: true, ShowInSearch: &no}); err != nil {
		t.Fatalf("SavePage failed: %v", err)
	}
	if err := a.Store.SavePage(Page{Slug: "draft", Title: "Draft", CanView: true}); err != nil {
		t.Fatalf("SavePage failed: %v", err)
	}
	a.Cache.Invalidate()

	body := get(a, "http://localhost:3000/sitemap.xml").Body.String()
	if !strings.Contains(body, "/visible</loc>") {
		t.Error("visible page missing from sitemap")
	}
	if strings.Contains(body, "hidden") {
		t.Error("page with ShowInSearch=false should be excluded")
	}
	if strings.Contains(body, "draft") {
		t.Error("draft page should be excluded")
	}
}

func TestSitemapExcludesErrorPages(t *testing.T) {
	a := newTestApp(t)
	show := true
	if err := a.Store.SavePage(Page{Slug: "not-found", Title: "Not Found", Type: "ErrorPage", CanView: true, Published: true, ShowInSearch: &show}); err != nil {
		t.Fatalf("SavePage failed: %v", err)
	}
	a.Cache.Invalidate()

	body := get(a, "http://localhost:3000/sitemap.xml").Body.String()
	if strings.Contains(body, "not-found") {
		t.Error("ErrorPage should be excluded from the sitemap")
	}
}

func TestSitemapIgnoresForeignHost(t *testing.T) {
	a := newTestApp(t)
	savePublishedPage(t, a, "about")

	body := get(a, "http://evil.example.net/sitemap.xml").Body.String()
	if strings.Contains(body, "<loc>") {
		t.Errorf("request from a foreign host should list no entries:\n%s", body)
	}
}

func TestSitemapIncludesRegisteredExtras(t *testing.T) {
	a := newTestApp(t)
	a.Extras.Register("Document", FreqYearly, func() ([]ContentItem, error) {
		return []ContentItem{{AbsoluteURL: "https://cdn.elsewhere.net/manual.pdf", Viewable: true}}, nil
	})

	body := get(a, "http://localhost:3000/sitemap.xml").Body.String()
	if !strings.Contains(body, "<loc>https://cdn.elsewhere.net/manual.pdf</loc>") {
		t.Errorf("registered extra item missing:\n%s", body)
	}
	if !strings.Contains(body, "<changefreq>yearly</changefreq>") {
		t.Error("extra item should carry its registered change frequency")
	}
}

func TestRobotsAdvertisesSitemap(t *testing.T) {
	a := newTestApp(t)

	body := get(a, "http://localhost:3000/robots.txt").Body.String()
	if !strings.Contains(body, "Sitemap: http://localhost:3000/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap line:\n%s", body)
	}

	a.State.DisableSitemap()
	body = get(a, "http://localhost:3000/robots.txt").Body.String()
	if strings.Contains(body, "Sitemap:") {
		t.Error("robots.txt should not advertise a disabled sitemap")
	}
}
