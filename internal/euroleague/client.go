// Package euroleague exposes typed accessors over the Euroleague APIs. Every
// call fetches one resource, normalizes its keys to snake_case and builds the
// matching domain record. A record that fails strict construction fails the
// whole call.
package euroleague

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"hoopster/internal/api"
)

const defaultLimit = 500

var (
	// ErrMissingCode is returned before any request when a required code argument is empty.
	ErrMissingCode = errors.New("euroleague: missing code")
	// ErrUnexpectedPayload is returned when a body is not the JSON shape the resource needs.
	ErrUnexpectedPayload = errors.New("euroleague: unexpected payload")
)

// Page is forwarded to list endpoints as offset/limit query parameters.
// A zero Limit means 500.
type Page struct {
	Offset int
	Limit  int
}

func (p Page) values() url.Values {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	return url.Values{
		"offset": {strconv.Itoa(offset)},
		"limit":  {strconv.Itoa(limit)},
	}
}

// Client is safe for concurrent use.
type Client struct {
	api    *api.Client
	logger *slog.Logger
}

// New wraps an api.Client. logger may be nil.
func New(apiClient *api.Client, logger *slog.Logger) *Client {
	return &Client{api: apiClient, logger: logger}
}

func requireCode(what, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingCode, what)
	}
	return code, nil
}
