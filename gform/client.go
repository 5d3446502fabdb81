package gform

import (
	"net"
	"net/http"
	"time"
)

// DefaultMaxConcurrency bounds simultaneous outbound calls to the form
// service when no explicit capacity is configured.
const DefaultMaxConcurrency = 10

// Client talks to the Google Forms front end: it resolves links, extracts
// field identifiers from the view page and submits responses. All network
// calls pass through a shared counting semaphore so a burst of users cannot
// open unbounded connections; callers over capacity block until a slot frees.
type Client struct {
	http     *http.Client
	noFollow *http.Client // submit path; keeps 302 observable
	sem      chan struct{}
}

// New creates a Client with the given concurrency capacity and per-request
// timeout. Zero values fall back to DefaultMaxConcurrency and 10 seconds.
func New(maxConcurrency int, timeout time.Duration) *Client {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   10,
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		noFollow: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		sem: make(chan struct{}, maxConcurrency),
	}
}

// acquire takes a semaphore slot, blocking if none is free, and returns the
// release function.
func (c *Client) acquire() func() {
	c.sem <- struct{}{}
	return func() { <-c.sem }
}

// statusError maps an HTTP status on the form's read endpoints to a
// classified error, or nil for 200.
func statusError(code int) *Error {
	switch {
	case code == http.StatusNotFound:
		return &Error{Kind: KindNotFound}
	case code != http.StatusOK:
		return &Error{Kind: KindPrivate}
	}
	return nil
}
