// Package client provides an HTTP client for the Archon knowledge-base
// and task-management API.
//
// The client wraps [github.com/go-resty/resty/v2] with automatic retries,
// uniform error normalization, and pluggable logging. Every API error is
// surfaced as an [*APIError] carrying the message extracted from the
// server's JSON error body.
//
// # Basic Usage
//
//	cfg, err := client.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c := client.New(cfg.BaseURL(),
//	    client.WithAuthToken(cfg.API.Key),
//	    client.WithRetryCount(5),
//	)
//
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	projects, err := c.ListProjects(ctx)
//
// # Configuration
//
// All client configuration is supplied as [Option] functions passed to
// [New]. Invalid values are silently ignored and the default is retained;
// all configuration is validated when [Client.Connect] is called. The
// server address is resolved separately, once at startup, by [LoadConfig]
// from ARCHON_* environment variables.
//
// # Retry Behaviour
//
// Transport-level retries are handled by resty using [DefaultRetryPolicy],
// which retries on HTTP 429 (rate limit) and 5xx server errors, and on
// transient connection errors. Context cancellation, deadline exceeded,
// and DNS resolution errors are never retried. Supply a custom function
// via [WithRetryPolicy] to override this behaviour.
//
// Application-level operations (or any fallible function) can be wrapped
// with [Retry], a generic exponential-backoff loop with a fixed attempt
// ceiling. Backoff is deterministic: no jitter is applied and no total
// elapsed time cap is enforced.
//
// # Authentication
//
// Token-based authentication is configured with [WithAuthToken] (and
// optionally [WithAuthScheme]). HTTP Basic authentication is configured
// with [WithBasicAuth]. The two methods are mutually exclusive.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZerologLogger] for a
// ready-made [github.com/rs/zerolog] adapter. The default [NoopLogger]
// discards all log output.
package client
