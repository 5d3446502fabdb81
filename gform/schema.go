package gform

import (
	"encoding/json"
	"io"
	"regexp"
)

// The view page embeds its configuration as a single JSON literal assigned
// to this marker, terminated by a semicolon.
var embeddedDataRe = regexp.MustCompile(`(?s)FB_PUBLIC_LOAD_DATA_ = (.*?);`)

// maxWalkDepth bounds the recursive field walk against pathological blobs.
const maxWalkDepth = 64

// FetchFieldIDs fetches the form's view page and returns the discovered
// field identifiers in first-encountered depth-first order. The first
// identifier is the one submissions are written into, so order matters.
func (c *Client) FetchFieldIDs(base string) ([]int64, error) {
	release := c.acquire()
	resp, err := c.http.Get(base + "/viewform")
	release()
	if err != nil {
		return nil, &Error{Kind: KindTransient, Err: err}
	}
	defer resp.Body.Close()
	if serr := statusError(resp.StatusCode); serr != nil {
		return nil, serr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransient, Err: err}
	}

	m := embeddedDataRe.FindSubmatch(body)
	if m == nil {
		return nil, &Error{Kind: KindNoEmbeddedData}
	}
	var data any
	if err := json.Unmarshal(m[1], &data); err != nil {
		return nil, &Error{Kind: KindNoEmbeddedData, Err: err}
	}

	ids := collectFieldIDs(data, 0, nil)
	if len(ids) == 0 {
		return nil, &Error{Kind: KindNoFields}
	}
	return ids, nil
}

// collectFieldIDs walks the untyped blob. A field leaf is an array of
// exactly three elements whose second element is null; its first element is
// the field identifier. Everything else is traversed further, up to
// maxWalkDepth.
func collectFieldIDs(v any, depth int, ids []int64) []int64 {
	if depth > maxWalkDepth {
		return ids
	}
	switch t := v.(type) {
	case map[string]any:
		for _, item := range t {
			ids = collectFieldIDs(item, depth+1, ids)
		}
	case []any:
		if len(t) == 3 && t[1] == nil {
			if id, ok := t[0].(float64); ok {
				return append(ids, int64(id))
			}
		}
		for _, item := range t {
			ids = collectFieldIDs(item, depth+1, ids)
		}
	}
	return ids
}
