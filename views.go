package sitemaps

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// FlagStatus is the current state of the two feature flags, for display on
// the admin dashboard.
type FlagStatus struct {
	SitemapEnabled bool
	PingEnabled    bool
}

// Views holds the templ components the handlers render. Host applications
// replace any of them to restyle the admin surface; DefaultViews supplies
// plain unstyled pages.
type Views struct {
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(pages []Page, status FlagStatus, message, csrfToken string) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// DefaultViews returns the built-in plain-HTML views.
func DefaultViews() Views {
	return Views{
		AdminLogin:     defaultAdminLogin,
		AdminDashboard: defaultAdminDashboard,
		NotFound:       func() templ.Component { return staticPage("Not Found", "Page not found.") },
		ServerError:    func() templ.Component { return staticPage("Server Error", "Something went wrong.") },
	}
}

func staticPage(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<!DOCTYPE html><html><head><title>%s</title></head><body><h1>%s</h1><p>%s</p></body></html>",
			html.EscapeString(title), html.EscapeString(title), html.EscapeString(body))
		return err
	})
}

func defaultAdminLogin(showError bool, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, "<!DOCTYPE html><html><head><title>Admin Login</title></head><body><h1>Admin</h1>")
		if showError {
			fmt.Fprint(w, "<p>Wrong password.</p>")
		}
		fmt.Fprintf(w, `<form method="post" action="/admin/login/">`+
			`<input type="hidden" name="_csrf" value="%s">`+
			`<input type="password" name="password" autofocus>`+
			`<button type="submit">Log in</button></form></body></html>`,
			html.EscapeString(csrfToken))
		return nil
	})
}

func defaultAdminDashboard(pages []Page, status FlagStatus, message, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		token := html.EscapeString(csrfToken)
		fmt.Fprint(w, "<!DOCTYPE html><html><head><title>Sitemap Admin</title></head><body><h1>Sitemap Admin</h1>")
		if message != "" {
			fmt.Fprintf(w, "<p><em>%s</em></p>", html.EscapeString(message))
		}
		fmt.Fprintf(w, "<p>Sitemap: %s | Ping: %s</p>", onOff(status.SitemapEnabled), onOff(status.PingEnabled))
		toggle := func(action, label string) {
			fmt.Fprintf(w, `<form method="post" action="/admin/%s/" style="display:inline">`+
				`<input type="hidden" name="_csrf" value="%s"><button>%s</button></form> `,
				action, token, label)
		}
		toggle("sitemap/enable", "Enable sitemap")
		toggle("sitemap/disable", "Disable sitemap")
		toggle("ping/enable", "Enable ping")
		toggle("ping/disable", "Disable ping")
		fmt.Fprint(w, "<h2>Pages</h2><ul>")
		for _, p := range pages {
			stage := "draft"
			if p.Published {
				stage = "published"
			}
			fmt.Fprintf(w, "<li>%s (%s, rev %d) ", html.EscapeString(p.Slug), stage, p.Revisions)
			action := "publish"
			label := "Publish"
			if p.Published {
				action = "unpublish"
				label = "Unpublish"
			}
			fmt.Fprintf(w, `<form method="post" action="/admin/%s/%s/" style="display:inline">`+
				`<input type="hidden" name="_csrf" value="%s"><button>%s</button></form></li>`,
				action, html.EscapeString(p.Slug), token, label)
		}
		fmt.Fprint(w, "</ul>")
		fmt.Fprintf(w, `<h2>New page</h2><form method="post" action="/admin/save/">`+
			`<input type="hidden" name="_csrf" value="%s">`+
			`<input name="title" placeholder="Title"> <input name="slug" placeholder="slug">`+
			` <input name="type" placeholder="Page"> <input name="priority" placeholder="priority">`+
			` <select name="show_in_search"><option value="">unset</option><option value="yes">yes</option><option value="no">no</option></select>`+
			` <label><input type="checkbox" name="can_view" checked> viewable</label>`+
			` <label><input type="checkbox" name="published"> published</label>`+
			` <button type="submit">Save</button></form></body></html>`, token)
		return nil
	})
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
