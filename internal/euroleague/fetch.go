package euroleague

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"hoopster/internal/api"
	"hoopster/internal/keys"
	"hoopster/internal/logging"
	"hoopster/internal/record"
)

// getJSON fetches a v2 resource and returns its decoded, key-normalized body.
func (c *Client) getJSON(ctx context.Context, params url.Values, segments ...any) (any, error) {
	target, err := c.api.BuildURL(api.V2, params, segments...)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.Get(ctx, target, nil)
	if err != nil {
		return nil, err
	}
	payload, err := resp.JSON()
	if err != nil {
		return nil, err
	}
	return keys.Value(payload), nil
}

func fetchOne[T any](ctx context.Context, c *Client, shape *record.Shape[T], segments ...any) (T, error) {
	var zero T
	payload, err := c.getJSON(ctx, nil, segments...)
	if err != nil {
		return zero, fmt.Errorf("euroleague: get %s: %w", shape.Name(), err)
	}
	return buildOne(shape, payload)
}

func buildOne[T any](shape *record.Shape[T], payload any) (T, error) {
	var zero T
	m, ok := payload.(map[string]any)
	if !ok {
		return zero, fmt.Errorf("%w: %s: expected object, got %T", ErrUnexpectedPayload, shape.Name(), payload)
	}
	out, err := shape.Build(m)
	if err != nil {
		return zero, fmt.Errorf("euroleague: build %s: %w", shape.Name(), err)
	}
	return out, nil
}

// fetchList treats a 204 as an empty list.
func fetchList[T any](ctx context.Context, c *Client, shape *record.Shape[T], params url.Values, segments ...any) ([]T, error) {
	payload, err := c.getJSON(ctx, params, segments...)
	if errors.Is(err, api.ErrNoContent) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("euroleague: list %s: %w", shape.Name(), err)
	}
	out, err := buildList(shape, payload)
	if err != nil {
		return nil, err
	}
	logging.Debug(c.logger, "fetched records",
		logging.FieldShape, shape.Name(),
		logging.FieldCount, len(out),
	)
	return out, nil
}

// buildList accepts a bare array or an object carrying the array under "data".
func buildList[T any](shape *record.Shape[T], payload any) ([]T, error) {
	if env, ok := payload.(map[string]any); ok {
		data, found := env["data"]
		if !found {
			return nil, fmt.Errorf("%w: %s: object without data", ErrUnexpectedPayload, shape.Name())
		}
		payload = data
	}
	if payload == nil {
		return []T{}, nil
	}
	items, ok := payload.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected list, got %T", ErrUnexpectedPayload, shape.Name(), payload)
	}
	out, err := shape.BuildList(items)
	if err != nil {
		return nil, fmt.Errorf("euroleague: build %s list: %w", shape.Name(), err)
	}
	return out, nil
}
