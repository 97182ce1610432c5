package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Kind classifies a failed request.
type Kind int

const (
	// Unavailable covers network failures and server-side errors.
	Unavailable Kind = iota
	// RateLimited means the backend asked us to slow down.
	RateLimited
	// Malformed means the reply was not JSON or broke the schema.
	Malformed
	// Truncated means the reply hit the token limit.
	Truncated
	// Rejected means the backend refused the request itself (bad key,
	// unknown model). Retrying will not help.
	Rejected
)

func (k Kind) String() string {
	switch k {
	case RateLimited:
		return "rate limited"
	case Malformed:
		return "malformed reply"
	case Truncated:
		return "reply truncated"
	case Rejected:
		return "request rejected"
	default:
		return "unavailable"
	}
}

// Failure is the error every backend returns.
type Failure struct {
	Kind    Kind
	Backend string
	// RetryAfter is the server's requested wait for RateLimited.
	RetryAfter time.Duration
	// Raw is the offending output for Malformed and Truncated.
	Raw json.RawMessage
	Err error
}

func (f *Failure) Error() string {
	msg := f.Kind.String()
	if f.Backend != "" {
		msg = f.Backend + ": " + msg
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *Failure) Unwrap() error { return f.Err }

// KindOf reports the Kind of err and whether err is a Failure at all.
func KindOf(err error) (Kind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return 0, false
}

// fromStatus turns an HTTP status from a backend SDK into a Failure.
func fromStatus(backend string, status int, header http.Header, err error) *Failure {
	f := &Failure{Kind: Unavailable, Backend: backend, Err: err}
	switch {
	case status == http.StatusTooManyRequests:
		f.Kind = RateLimited
		f.RetryAfter = retryAfter(header)
	case status == http.StatusBadRequest, status == http.StatusUnauthorized,
		status == http.StatusForbidden, status == http.StatusNotFound:
		f.Kind = Rejected
	}
	return f
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func malformed(backend string, raw json.RawMessage, format string, args ...any) *Failure {
	return &Failure{Kind: Malformed, Backend: backend, Raw: raw, Err: fmt.Errorf(format, args...)}
}
