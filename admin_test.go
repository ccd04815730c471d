package sitemaps

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
)

func testContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/publish/about/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestNotifySearchEnginesSkipsWhenDisabled(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	a := newTestApp(t)
	a.Notifier.Endpoint = srv.URL
	// ping is off by default: a publish event must stay silent
	a.notifySearchEngines(testContext())
	if calls.Load() != 0 {
		t.Errorf("publish with ping disabled made %d outbound calls, want 0", calls.Load())
	}
}

func TestNotifySearchEnginesPingsWhenEnabled(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	a := newTestApp(t)
	a.Notifier.Endpoint = srv.URL
	a.State.EnablePing()
	a.notifySearchEngines(testContext())
	if calls.Load() != 1 {
		t.Errorf("publish with ping enabled made %d outbound calls, want 1", calls.Load())
	}
}

func TestNotifySearchEnginesSwallowsFailures(t *testing.T) {
	a := newTestApp(t)
	a.Notifier.Endpoint = "http://127.0.0.1:1"
	a.State.EnablePing()
	// must not panic or surface the transport error
	a.notifySearchEngines(testContext())
}
