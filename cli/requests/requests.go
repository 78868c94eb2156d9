package requests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"

	"docvault/shared/constants"
)

const defaultTimeout = 60 * time.Second

// Client sends requests to the docvault API. Requests carry the caller's
// bearer token (if any), the CLI user agent, and a fresh request ID.
type Client struct {
	HTTP       *http.Client
	Limiter    *rate.Limiter
	MaxRetries uint64
	Logger     hclog.Logger

	retryInterval time.Duration
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.HTTP = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 && c.HTTP != nil {
			c.HTTP.Timeout = timeout
		}
	}
}

// WithRateLimit caps outgoing requests to perSecond, allowing bursts of up to
// burst requests. A non-positive rate disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.Limiter = nil
			return
		}

		if burst < 1 {
			burst = 1
		}

		c.Limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithRetries enables up to n retries for idempotent requests that fail with
// a network error or a 5xx status. POST requests are never retried.
func WithRetries(n uint64) Option {
	return func(c *Client) {
		c.MaxRetries = n
	}
}

func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.Logger = logger
	}
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		HTTP:          &http.Client{Timeout: defaultTimeout},
		Logger:        hclog.NewNullLogger(),
		retryInterval: backoff.DefaultInitialInterval,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.HTTP == nil {
		client.HTTP = &http.Client{Timeout: defaultTimeout}
	}

	if client.Logger == nil {
		client.Logger = hclog.NewNullLogger()
	}

	return client
}

func (c *Client) GetRequest(token, url string) (*http.Response, error) {
	return c.sendRequest(token, http.MethodGet, url, nil)
}

func (c *Client) PostRequest(token, url string, data []byte) (*http.Response, error) {
	return c.sendRequest(token, http.MethodPost, url, data)
}

func (c *Client) PutRequest(token, url string, data []byte) (*http.Response, error) {
	return c.sendRequest(token, http.MethodPut, url, data)
}

func (c *Client) DeleteRequest(token, url string, data []byte) (*http.Response, error) {
	return c.sendRequest(token, http.MethodDelete, url, data)
}

// PostMultipart streams a multipart/form-data body to url. The body can only
// be read once, so the request is sent exactly one time.
func (c *Client) PostMultipart(
	token,
	url,
	contentType string,
	body io.Reader,
) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentType)
	return c.do(token, req)
}

// FetchRequest performs a GET without the API's JSON headers, used for
// following download links that may point outside the API server.
func (c *Client) FetchRequest(token, url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	return c.do(token, req)
}

func (c *Client) sendRequest(token, method, url string, data []byte) (*http.Response, error) {
	newRequest := func() (*http.Request, error) {
		var body io.Reader
		if data != nil {
			body = bytes.NewReader(data)
		}

		req, err := http.NewRequest(method, url, body)
		if err != nil {
			return nil, err
		}

		if data != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	if c.MaxRetries == 0 || !isIdempotent(method) {
		req, err := newRequest()
		if err != nil {
			return nil, err
		}

		return c.do(token, req)
	}

	var last *http.Response
	operation := func() (*http.Response, error) {
		if last != nil {
			_, _ = io.Copy(io.Discard, last.Body)
			_ = last.Body.Close()
			last = nil
		}

		req, err := newRequest()
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		resp, err := c.do(token, req)
		if err != nil {
			return nil, err
		}

		last = resp
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, &retryableStatus{code: resp.StatusCode}
		}

		return resp, nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.retryInterval
	policy := backoff.WithMaxRetries(exp, c.MaxRetries)
	notify := func(err error, wait time.Duration) {
		c.Logger.Debug("retrying request", "method", method, "url", url,
			"error", err, "wait", wait)
	}

	resp, err := backoff.RetryNotifyWithData(operation, policy, notify)

	// Out of retries on a 5xx: hand the final response back so the caller
	// can read the server's error.
	var statusErr *retryableStatus
	if errors.As(err, &statusErr) && resp != nil {
		return resp, nil
	}

	return resp, err
}

func (c *Client) do(token string, req *http.Request) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(context.Background()); err != nil {
			return nil, err
		}
	}

	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	req.Header.Set("User-Agent", constants.CLIUserAgent)
	req.Header.Set(constants.RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Debug("request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", requestID,
			"error", err)
		return nil, err
	}

	c.Logger.Debug("request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))

	return resp, nil
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodHead:
		return true
	}

	return false
}

type retryableStatus struct {
	code int
}

func (e *retryableStatus) Error() string {
	return fmt.Sprintf("server responded with %d", e.code)
}
