package sitemaps

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(c.RealIP())
	return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	title := strings.TrimSpace(c.FormValue("title"))
	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Slug+is+required.+Add+a+title+or+slug.")
	}
	page := Page{
		Slug:      slug,
		Title:     title,
		Type:      strings.TrimSpace(c.FormValue("type")),
		Published: c.FormValue("published") != "",
		CanView:   c.FormValue("can_view") != "",
	}
	switch c.FormValue("show_in_search") {
	case "yes":
		v := true
		page.ShowInSearch = &v
	case "no":
		v := false
		page.ShowInSearch = &v
	}
	if raw := strings.TrimSpace(c.FormValue("priority")); raw != "" {
		prio, err := strconv.ParseFloat(raw, 64)
		if err != nil || prio < 0 || prio > 1 {
			return c.Redirect(http.StatusSeeOther, "/admin/?msg=Priority+must+be+a+number+between+0+and+1.")
		}
		page.Priority = &prio
	}
	if err := a.Store.SavePage(page); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Store.DeletePage(c.Param("slug")); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) handleAdminPublish(c echo.Context) error {
	return a.setPageStage(c, true)
}

func (a *App) handleAdminUnpublish(c echo.Context) error {
	return a.setPageStage(c, false)
}

func (a *App) setPageStage(c echo.Context, publish bool) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	var err error
	if publish {
		err = a.Store.PublishPage(slug)
	} else {
		err = a.Store.UnpublishPage(slug)
	}
	if err == ErrNotFound {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	a.Cache.Invalidate()
	a.notifySearchEngines(c)
	msg := "published"
	if !publish {
		msg = "unpublished"
	}
	return a.renderAdminDashboard(c, msg)
}

// notifySearchEngines pings the search engine after a publish or unpublish.
// The ping is best effort: a skipped ping is silent and a failed one is
// logged, never surfaced to the publish flow.
func (a *App) notifySearchEngines(c echo.Context) {
	body, err := a.Notifier.Ping(a.Config.URL, a.Config.Dev)
	if errors.Is(err, ErrPingDisabled) {
		return
	}
	if err != nil {
		c.Logger().Warnf("sitemap ping failed: %v", err)
		return
	}
	c.Logger().Infof("sitemap ping accepted: %s", strings.TrimSpace(body))
}

func (a *App) handleToggle(apply func(*State)) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c) {
			return c.Redirect(http.StatusSeeOther, "/admin/")
		}
		apply(a.State)
		return a.renderAdminDashboard(c, "updated")
	}
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	pages, err := a.Store.ListAllPages()
	if err != nil {
		return err
	}
	st := FlagStatus{
		SitemapEnabled: a.State.SitemapEnabled(),
		PingEnabled:    a.State.PingEnabled(),
	}
	return Render(c, a.Views.AdminDashboard(pages, st, msg, CsrfToken(c)))
}
