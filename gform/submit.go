package gform

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Submit posts the field mapping to the form's submit endpoint as
// url-encoded form data. Google answers an accepted submission with 200 or a
// 302 redirect; anything else, including transport errors, is reported as
// KindSubmitFailed so the caller can offer a retry.
func (c *Client) Submit(base string, fields map[string]string) error {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	release := c.acquire()
	resp, err := c.noFollow.PostForm(base+"/formResponse", form)
	release()
	if err != nil {
		return &Error{Kind: KindSubmitFailed, Err: err}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusFound {
		return &Error{Kind: KindSubmitFailed, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	return nil
}

// EntryKey builds the form key for a field identifier.
func EntryKey(id string) string {
	return "entry." + id
}
