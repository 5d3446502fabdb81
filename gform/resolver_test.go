package gform

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient() *Client {
	return New(4, 5*time.Second)
}

func TestResolve_LongURL(t *testing.T) {
	c := newTestClient()

	base, err := c.Resolve("https://docs.google.com/forms/d/e/XYZ123/viewform")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if base != CanonicalBase+"XYZ123" {
		t.Errorf("unexpected canonical base %q", base)
	}
}

func TestResolve_TerminalToken(t *testing.T) {
	c := newTestClient()

	base, err := c.Resolve("https://docs.google.com/forms/d/e/XYZ123")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if base != CanonicalBase+"XYZ123" {
		t.Errorf("unexpected canonical base %q", base)
	}
}

func TestResolve_ShortLinkRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/forms.gle/abc":
			http.Redirect(w, r, "/forms/d/e/XYZ123/viewform", http.StatusFound)
		case "/forms/d/e/XYZ123/viewform":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	c := newTestClient()

	short, err := c.Resolve(srv.URL + "/forms.gle/abc")
	if err != nil {
		t.Fatalf("Resolve short link failed: %v", err)
	}
	long, err := c.Resolve("https://docs.google.com/forms/d/e/XYZ123/viewform")
	if err != nil {
		t.Fatalf("Resolve long link failed: %v", err)
	}
	if short != long {
		t.Errorf("short and long links resolved differently: %q vs %q", short, long)
	}
	if short != CanonicalBase+"XYZ123" {
		t.Errorf("unexpected canonical base %q", short)
	}
}

func TestResolve_MalformedURL(t *testing.T) {
	c := newTestClient()

	_, err := c.Resolve("https://docs.google.com/spreadsheets/d/123")
	if kind, ok := KindOf(err); !ok || kind != KindMalformedURL {
		t.Errorf("expected malformed url, got %v", err)
	}
}

func TestResolve_ShortLinkNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	c := newTestClient()

	_, err := c.Resolve(srv.URL + "/forms.gle/gone")
	if kind, ok := KindOf(err); !ok || kind != KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestResolve_ShortLinkPrivate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	c := newTestClient()

	_, err := c.Resolve(srv.URL + "/forms.gle/locked")
	if kind, ok := KindOf(err); !ok || kind != KindPrivate {
		t.Errorf("expected private, got %v", err)
	}
}

func TestResolve_ShortLinkTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	c := newTestClient()

	_, err := c.Resolve(url + "/forms.gle/abc")
	if kind, ok := KindOf(err); !ok || kind != KindTransient {
		t.Errorf("expected transient network error, got %v", err)
	}
}
