package euroleague

import (
	"context"
	"errors"
	"fmt"

	"hoopster/internal/api"
	"hoopster/internal/domain/people"
)

// People lists registered people (players, coaches and staff).
func (c *Client) People(ctx context.Context, page Page) ([]people.Person, error) {
	return fetchList(ctx, c, people.PersonShape, page.values(), "people")
}

// PersonProfile fetches a person and merges in their biography. A person
// without a biography (204) is returned with a nil Bio.
func (c *Client) PersonProfile(ctx context.Context, code string) (people.Person, error) {
	code, err := requireCode("person", code)
	if err != nil {
		return people.Person{}, err
	}

	payload, err := c.getJSON(ctx, nil, "people", code)
	if err != nil {
		return people.Person{}, fmt.Errorf("euroleague: get person: %w", err)
	}
	data, ok := payload.(map[string]any)
	if !ok {
		return people.Person{}, fmt.Errorf("%w: person: expected object, got %T", ErrUnexpectedPayload, payload)
	}

	bio, err := c.getJSON(ctx, nil, "people", code, "bio")
	switch {
	case errors.Is(err, api.ErrNoContent):
	case err != nil:
		return people.Person{}, fmt.Errorf("euroleague: get person bio: %w", err)
	default:
		merged := make(map[string]any, len(data)+1)
		for k, v := range data {
			merged[k] = v
		}
		merged["bio"] = bio
		data = merged
	}

	return buildOne(people.PersonShape, data)
}
