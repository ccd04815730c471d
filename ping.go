package sitemaps

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultPingEndpoint is Google's sitemap notification endpoint.
const DefaultPingEndpoint = "https://www.google.com/ping"

// ErrPingDisabled is returned by Notifier.Ping when no notification was sent
// because the sitemap feature is off, pinging is off, or the site runs in
// dev mode. It is a skip signal, not a failure.
var ErrPingDisabled = errors.New("sitemaps: ping disabled")

// Notifier tells a search engine that the sitemap changed.
type Notifier struct {
	Endpoint string       // defaults to DefaultPingEndpoint when empty
	Client   *http.Client // defaults to http.DefaultClient when nil
	State    *State
}

// Ping notifies the search engine that baseURL's sitemap changed and returns
// the raw response body. It returns ErrPingDisabled without any network
// activity when the sitemap feature or pinging is disabled or dev is true.
// Transport errors surface unchanged; there is no retry.
func (n *Notifier) Ping(baseURL string, dev bool) (string, error) {
	if !n.State.SitemapEnabled() || !n.State.PingEnabled() || dev {
		return "", ErrPingDisabled
	}

	endpoint := n.Endpoint
	if endpoint == "" {
		endpoint = DefaultPingEndpoint
	}
	loc := BuildURL(baseURL, "sitemap.xml")
	pingURL := endpoint + "?sitemap=" + url.QueryEscape(loc)

	client := n.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(pingURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return string(body), fmt.Errorf("sitemaps: ping returned %s", resp.Status)
	}
	return string(body), nil
}
