package sitemaps

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (a *App) handleSitemap(c echo.Context) error {
	if !a.State.SitemapEnabled() {
		return c.String(http.StatusMethodNotAllowed, "sitemap.xml is not available on this site")
	}
	entries, err := a.Assembler.Build(c.Request().Host, time.Now())
	if err != nil {
		return err
	}
	return renderSitemap(c, entries)
}

// handleRobots emits a minimal robots.txt advertising the sitemap location.
func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n"
	if a.State.SitemapEnabled() {
		body += "\nSitemap: " + BuildURL(a.Config.URL, "sitemap.xml") + "\n"
	}
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
