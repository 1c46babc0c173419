package client

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the retry condition wired into [Client] unless
// [WithRetryPolicy] overrides it. A request is retried on HTTP 429 (the
// Archon server rate-limits crawl and embedding endpoints) and on 5xx
// server errors, as well as on transient connection errors.
//
// Context cancellation, deadline exceeded, and DNS resolution failures
// are never retried: the first two mean the caller gave up, and a name
// that does not resolve will not start resolving on the next attempt.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		return transientError(err)
	}

	code := r.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func transientError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return false
	}

	return true
}
