package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	minWaitTime     = 100 * time.Millisecond
	maxWaitTime     = 1 * time.Minute
	maxMaxWaitTime  = 5 * time.Minute
	maxRetryCeiling = 100
)

type Option func(*Options)

type Options struct {
	retryCount        int
	retryWaitTime     time.Duration
	retryMaxWaitTime  time.Duration
	requestTimeout    time.Duration
	requestLogger     RequestLogger
	retryPolicy       func(*resty.Response, error) bool
	requestHeaders    map[string]string
	basicAuthUsername string
	basicAuthPassword string
	authScheme        string
	authToken         string
}

func newClientOptions() *Options {
	return &Options{
		retryCount:       3,
		retryWaitTime:    500 * time.Millisecond,
		retryMaxWaitTime: 3 * time.Second,
		requestTimeout:   30 * time.Second,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// Validate checks the assembled options for consistency. It is called by
// [Client.Connect]; option constructors silently ignore out-of-range
// values, so this is where misconfiguration becomes an error.
func (o *Options) Validate() error {
	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}
	if o.retryCount > maxRetryCeiling {
		return fmt.Errorf("retryCount must not exceed %d", maxRetryCeiling)
	}
	if o.retryWaitTime < minWaitTime {
		return errors.New("retryWaitTime must be at least 100ms")
	}
	if o.retryWaitTime > maxWaitTime {
		return fmt.Errorf("retryWaitTime must not exceed %s", maxWaitTime)
	}
	if o.retryMaxWaitTime < minWaitTime {
		return errors.New("retryMaxWaitTime must be at least 100ms")
	}
	if o.retryMaxWaitTime > maxMaxWaitTime {
		return fmt.Errorf("retryMaxWaitTime must not exceed %s", maxMaxWaitTime)
	}
	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf("retryMaxWaitTime (%s) must be greater than or equal to retryWaitTime (%s)",
			o.retryMaxWaitTime, o.retryWaitTime)
	}
	if o.requestTimeout <= 0 {
		return errors.New("requestTimeout must be positive")
	}
	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}
	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}
	if o.basicAuthUsername != "" && o.authToken != "" {
		return errors.New("cannot use both basic auth and token auth - choose one")
	}

	return nil
}

func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= minWaitTime {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWait time.Duration) Option {
	return func(o *Options) {
		if maxWait >= minWaitTime {
			o.retryMaxWaitTime = maxWait
		}
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.requestTimeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func WithBasicAuth(username, password string) Option {
	return func(o *Options) {
		o.basicAuthUsername = username
		o.basicAuthPassword = password
	}
}

func WithAuthScheme(scheme string) Option {
	return func(o *Options) {
		o.authScheme = scheme
	}
}

func WithAuthToken(token string) Option {
	return func(o *Options) {
		o.authToken = token
	}
}
