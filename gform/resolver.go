package gform

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// CanonicalBase is the prefix from which both the viewform and formResponse
// endpoints are derived.
const CanonicalBase = "https://docs.google.com/forms/d/e/"

// shortLinkDomain marks links that must be expanded with one
// redirect-following GET before the token can be extracted.
const shortLinkDomain = "forms.gle"

var formTokenRe = regexp.MustCompile(`/d/e/([a-zA-Z0-9_-]+)(?:/|$)`)

// Resolve normalizes a user-supplied form link into the canonical base
// ".../forms/d/e/<token>". Short links are expanded first so that view and
// submit endpoints are always derived from the same resolved token.
func (c *Client) Resolve(rawURL string) (string, error) {
	if strings.Contains(rawURL, shortLinkDomain) {
		release := c.acquire()
		resp, err := c.http.Get(rawURL)
		release()
		if err != nil {
			return "", &Error{Kind: KindTransient, Err: err}
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if serr := statusError(resp.StatusCode); serr != nil {
			return "", serr
		}
		rawURL = resp.Request.URL.String()
	}

	m := formTokenRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", &Error{Kind: KindMalformedURL, Err: fmt.Errorf("no form token in %q", rawURL)}
	}
	return CanonicalBase + m[1], nil
}
