package awx

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "cfctl"
)

// ErrNotFound is returned when a lookup matches no resource.
var ErrNotFound = errors.New("not found")

type Client struct {
	server    string
	username  string
	password  string
	timeout   time.Duration
	insecure  bool
	userAgent string
	limiter   *rate.Limiter
	log       *zap.SugaredLogger

	http *resty.Client
}

type Option func(*Client) error

func New(opts ...Option) (*Client, error) {
	c := &Client{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
		log:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.server == "" {
		return nil, errors.New("server is required")
	}

	c.http = resty.New().
		SetBaseURL(c.server).
		SetTimeout(c.timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", c.userAgent).
		SetLogger(c.log)
	if c.username != "" {
		c.http.SetBasicAuth(c.username, c.password)
	}
	if c.insecure {
		c.http.SetTLSClientConfig(&tls.Config{MinVersion: tls.VersionTLS12, InsecureSkipVerify: true}) //nolint:gosec // opt-in for self-signed AWX installs
	}
	return c, nil
}

func WithServer(server string) Option {
	return func(c *Client) error {
		if server == "" {
			return errors.New("server is required")
		}
		parsed, err := url.Parse(server)
		if err != nil {
			return fmt.Errorf("invalid server: %w", err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("invalid server %q: scheme must be http or https", server)
		}
		if parsed.Host == "" {
			return fmt.Errorf("invalid server %q: host is required", server)
		}
		c.server = strings.TrimRight(server, "/")
		return nil
	}
}

func WithBasicAuth(username, password string) Option {
	return func(c *Client) error {
		c.username = username
		c.password = password
		return nil
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", timeout)
		}
		c.timeout = timeout
		return nil
	}
}

func WithInsecureSkipTLSVerify(insecure bool) Option {
	return func(c *Client) error {
		c.insecure = insecure
		return nil
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) error {
		c.userAgent = userAgent
		return nil
	}
}

// WithRateLimit paces requests to rps requests per second. A non-positive rps disables pacing.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) error {
		if rps <= 0 {
			c.limiter = nil
			return nil
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		return nil
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) error {
		if log != nil {
			c.log = log
		}
		return nil
	}
}

// Server returns the base URL the client talks to.
func (c *Client) Server() string {
	return c.server
}

func (c *Client) get(ctx context.Context, endpoint string, query map[string]string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(endpoint)
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}
	c.log.Debugw("AWX request",
		"method", resp.Request.Method,
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
	)

	if resp.IsError() {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}

func decodeError(resp *resty.Response) error {
	var apiErr struct {
		Detail string `json:"detail"`
	}
	body := resp.Body()
	if len(body) > 0 {
		_ = json.Unmarshal(body, &apiErr)
	}
	msg := strings.TrimSpace(apiErr.Detail)
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = resp.Status()
	}
	return &HTTPError{StatusCode: resp.StatusCode(), Message: msg}
}

type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
}
