package gform

import "errors"

// Kind classifies a form-pipeline failure. Expected upstream conditions
// (missing form, private form, malformed link) are values, not panics; the
// caller decides how to present each one.
type Kind int

const (
	// KindMalformedURL means no form token could be found in the link.
	KindMalformedURL Kind = iota
	// KindNotFound means the form page returned 404.
	KindNotFound
	// KindPrivate means the form page returned a non-200, non-404 status.
	KindPrivate
	// KindNoEmbeddedData means the view page had no parseable config blob.
	KindNoEmbeddedData
	// KindNoFields means the config blob yielded no field identifiers.
	KindNoFields
	// KindTransient means a connection or timeout error; retryable by the caller.
	KindTransient
	// KindSubmitFailed means the formResponse POST was not accepted.
	KindSubmitFailed
)

func (k Kind) String() string {
	switch k {
	case KindMalformedURL:
		return "malformed url"
	case KindNotFound:
		return "not found"
	case KindPrivate:
		return "private"
	case KindNoEmbeddedData:
		return "no embedded data"
	case KindNoFields:
		return "no fields"
	case KindTransient:
		return "transient network error"
	case KindSubmitFailed:
		return "submission failed"
	}
	return "unknown"
}

// Error is a classified form-pipeline failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "gform: " + e.Kind.String() + ": " + e.Err.Error()
	}
	return "gform: " + e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the classification from err. The second return is false
// when err did not come from this package.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
