package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"hoopster/internal/logging"
)

// RequestOption customizes a single call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	headers http.Header
	timeout time.Duration
}

// WithHeaders replaces the client's default headers for one call.
func WithHeaders(h http.Header) RequestOption {
	return func(o *requestOptions) {
		o.headers = h.Clone()
	}
}

// WithTimeout bounds one call, including reading the body.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *requestOptions) {
		o.timeout = d
	}
}

// Get issues a GET, appending params to the URL's query string.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, withQuery(rawURL, params), nil, opts...)
}

// Post sends body as JSON.
func (c *Client) Post(ctx context.Context, rawURL string, body any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPost, rawURL, body, opts...)
}

func (c *Client) Put(ctx context.Context, rawURL string, body any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPut, rawURL, body, opts...)
}

func (c *Client) Patch(ctx context.Context, rawURL string, body any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, rawURL, body, opts...)
}

func (c *Client) Delete(ctx context.Context, rawURL string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, rawURL, nil, opts...)
}

// Do performs one request. A non-nil body is sent as JSON. Transport failures
// are returned unchanged, statuses >= 400 as *StatusError and 204 as ErrNoContent.
func (c *Client) Do(ctx context.Context, method, rawURL string, body any, opts ...RequestOption) (*Response, error) {
	if !slices.Contains(validMethods, method) {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidMethod, method, strings.Join(validMethods, ", "))
	}

	o := requestOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		payload, err := jsonAPI.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	headers := o.headers
	if headers == nil {
		headers = c.headers
	}
	for k, v := range headers {
		req.Header[k] = append([]string(nil), v...)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get(headerRequestID) == "" {
		req.Header.Set(headerRequestID, uuid.NewString())
	}

	endpoint := c.endpoint(rawURL)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(req, endpoint, 0, time.Since(start), err)
		return nil, err
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		err = fmt.Errorf("api: read response body: %w", err)
		c.observe(req, endpoint, resp.StatusCode, time.Since(start), err)
		return nil, err
	}

	switch {
	case resp.StatusCode >= http.StatusBadRequest:
		err = &StatusError{Method: method, URL: rawURL, StatusCode: resp.StatusCode, Body: string(data)}
	case resp.StatusCode == http.StatusNoContent:
		err = ErrNoContent
	}
	c.observe(req, endpoint, resp.StatusCode, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		URL:        rawURL,
		Body:       data,
	}, nil
}

func (c *Client) observe(req *http.Request, endpoint string, status int, d time.Duration, err error) {
	if errors.Is(err, ErrNoContent) {
		err = nil
	}
	if c.recorder != nil {
		c.recorder.RecordRequest(req.Method, endpoint, status, d, err)
	}
	args := []any{
		logging.FieldMethod, req.Method,
		logging.FieldEndpoint, endpoint,
		logging.FieldURL, req.URL.String(),
		logging.FieldStatusCode, status,
		logging.FieldDurationMS, d.Milliseconds(),
		logging.FieldRequestID, req.Header.Get(headerRequestID),
	}
	if err != nil {
		logging.Warn(c.logger, "api request failed", append(args, "error", err)...)
		return
	}
	logging.Debug(c.logger, "api request", args...)
}

func withQuery(rawURL string, params url.Values) string {
	if len(params) == 0 {
		return rawURL
	}
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + params.Encode()
}
