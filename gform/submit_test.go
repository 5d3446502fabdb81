package gform

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmit_OK(t *testing.T) {
	var gotPath, gotName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		r.ParseForm()
		gotName = r.PostFormValue("entry.505616461")
	}))
	defer srv.Close()
	c := newTestClient()

	err := c.Submit(srv.URL, map[string]string{"entry.505616461": "Alice"})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if gotPath != "/formResponse" {
		t.Errorf("expected POST to /formResponse, got %s", gotPath)
	}
	if gotName != "Alice" {
		t.Errorf("expected the submitted value, got %q", gotName)
	}
}

func TestSubmit_RedirectIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/formResponse/confirmed", http.StatusFound)
	}))
	defer srv.Close()
	c := newTestClient()

	if err := c.Submit(srv.URL, map[string]string{"entry.1": "x"}); err != nil {
		t.Errorf("expected 302 to be accepted, got %v", err)
	}
}

func TestSubmit_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := newTestClient()

	err := c.Submit(srv.URL, map[string]string{"entry.1": "x"})
	if kind, ok := KindOf(err); !ok || kind != KindSubmitFailed {
		t.Errorf("expected submission failed, got %v", err)
	}
}

func TestSubmit_TransportErrorIsSubmitFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	c := newTestClient()

	err := c.Submit(url, map[string]string{"entry.1": "x"})
	if kind, ok := KindOf(err); !ok || kind != KindSubmitFailed {
		t.Errorf("expected submission failed, got %v", err)
	}
}

func TestSubmit_ConcurrencyGate(t *testing.T) {
	var inFlight, maxInFlight int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&inFlight, 1)
		for {
			seen := atomic.LoadInt64(&maxInFlight)
			if n <= seen || atomic.CompareAndSwapInt64(&maxInFlight, seen, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt64(&inFlight, -1)
	}))
	defer srv.Close()

	c := New(2, 5*time.Second)
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.Submit(srv.URL, map[string]string{"entry.1": "x"}); err != nil {
				t.Errorf("Submit failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&maxInFlight); got > 2 {
		t.Errorf("expected at most 2 concurrent requests, observed %d", got)
	}
}
