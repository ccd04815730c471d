package sitemaps

import (
	"net/url"
	"strings"
)

// Filter decides whether a content item appears in the sitemap.
type Filter struct {
	// RequireShowInSearch excludes page items that are not explicitly
	// marked as visible to search. Default policy is on.
	RequireShowInSearch bool
}

// IncludesPage reports whether a page item belongs in the sitemap served to
// requestHost. All of the following must hold: the item is viewable, its
// priority is absent or positive, its URL's host matches the request host,
// its type is not excluded, and (under the search policy) it is explicitly
// marked as shown in search.
func (f Filter) IncludesPage(item ContentItem, requestHost string) bool {
	if !f.IncludesExtra(item) {
		return false
	}
	if item.TypeExcluded {
		return false
	}
	host := hostOf(item.AbsoluteURL)
	if host == "" || host != hostOf(requestHost) {
		return false
	}
	if f.RequireShowInSearch && (item.ShowInSearch == nil || !*item.ShowInSearch) {
		return false
	}
	return true
}

// IncludesExtra applies only the viewability and priority rules, plus a
// non-empty URL. Registered extra items skip the host, type and search
// checks so that off-host resources can be listed.
func (f Filter) IncludesExtra(item ContentItem) bool {
	if item.AbsoluteURL == "" {
		return false
	}
	if !item.Viewable {
		return false
	}
	if item.Priority != nil && *item.Priority <= 0 {
		return false
	}
	return true
}

// hostOf extracts the host:port component of a URL-ish string. Inputs
// without a scheme (a bare Host header, say) get a placeholder scheme so
// url.Parse puts the host in the right place. Comparison of the results is
// case-sensitive.
func hostOf(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
