// Package api is the request façade over the Euroleague HTTP APIs. It builds
// URLs against the per-version base, dispatches requests with default headers
// and maps HTTP outcomes onto Go errors.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Recorder observes completed requests. Status is 0 when the transport failed.
type Recorder interface {
	RecordRequest(method, endpoint string, status int, duration time.Duration, err error)
}

// BaseURLs holds the root for each API version. Empty entries use the public defaults.
type BaseURLs struct {
	V1 string
	V2 string
}

// Config wires a Client. Every field is optional.
type Config struct {
	BaseURLs   BaseURLs
	HTTPClient Doer
	UserAgent  string
	// Headers replaces DefaultHeaders(UserAgent) for every request that does not pass its own.
	Headers  http.Header
	Logger   *slog.Logger
	Recorder Recorder
}

// Client is safe for concurrent use once constructed.
type Client struct {
	bases      map[Version]string
	httpClient Doer
	headers    http.Header
	logger     *slog.Logger
	recorder   Recorder
}

// NewClient validates the base URLs and applies defaults.
func NewClient(cfg Config) (*Client, error) {
	bases := map[Version]string{
		V1: normalizeBaseURL(cfg.BaseURLs.V1, defaultV1URL),
		V2: normalizeBaseURL(cfg.BaseURLs.V2, defaultV2URL),
	}
	for v, raw := range bases {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("api: parse v%s base url: %w", v, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("api: v%s base url %q must be absolute", v, raw)
		}
	}

	headers := cfg.Headers.Clone()
	if headers == nil {
		headers = DefaultHeaders(cfg.UserAgent)
	}

	return &Client{
		bases:      bases,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		headers:    headers,
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
	}, nil
}

// BaseURL returns the root for the given version.
func (c *Client) BaseURL(version Version) (string, error) {
	base, ok := c.bases[version.resolve()]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownVersion, int(version))
	}
	return base, nil
}

// BuildURL joins segments under the version's base URL. Each segment is
// formatted with fmt.Sprint and path-escaped. A "version" key in params
// overrides version and is not sent as a query parameter.
func (c *Client) BuildURL(version Version, params url.Values, segments ...any) (string, error) {
	if params.Has("version") {
		parsed, err := ParseVersion(params.Get("version"))
		if err != nil {
			return "", err
		}
		version = parsed
		params = cloneWithout(params, "version")
	}

	base, err := c.BaseURL(version)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, url.PathEscape(fmt.Sprint(seg)))
	}
	out := base + strings.Join(parts, "/")
	if len(params) > 0 {
		out += "?" + params.Encode()
	}
	return out, nil
}

// endpoint reduces a request URL to the first path segment under its base,
// which keeps metric labels bounded.
func (c *Client) endpoint(rawURL string) string {
	for _, base := range c.bases {
		if rest, ok := strings.CutPrefix(rawURL, base); ok {
			rest, _, _ = strings.Cut(rest, "?")
			first, _, _ := strings.Cut(rest, "/")
			if first != "" {
				return first
			}
		}
	}
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return u.Path
	}
	return "unknown"
}

func cloneWithout(params url.Values, key string) url.Values {
	out := make(url.Values, len(params))
	for k, v := range params {
		if k == key {
			continue
		}
		out[k] = append([]string(nil), v...)
	}
	return out
}
