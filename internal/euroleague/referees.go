package euroleague

import (
	"context"
	"fmt"

	"hoopster/internal/api"
	"hoopster/internal/domain/people"
	"hoopster/internal/keys"
	"hoopster/internal/logging"
)

// Referees lists registered referees.
func (c *Client) Referees(ctx context.Context, page Page) ([]people.Referee, error) {
	return fetchList(ctx, c, people.RefereeShape, page.values(), "referees")
}

// Referee fetches one referee by code.
func (c *Client) Referee(ctx context.Context, code string) (people.Referee, error) {
	code, err := requireCode("referee", code)
	if err != nil {
		return people.Referee{}, err
	}
	return fetchOne(ctx, c, people.RefereeShape, "referees", code)
}

// LegacyReferees lists referees from the v1 XML API, one record per <referee> element.
func (c *Client) LegacyReferees(ctx context.Context) ([]people.Referee, error) {
	target, err := c.api.BuildURL(api.V1, nil, "referees")
	if err != nil {
		return nil, err
	}
	resp, err := c.api.Get(ctx, target, nil)
	if err != nil {
		return nil, fmt.Errorf("euroleague: get legacy referees: %w", err)
	}
	elems, err := resp.XMLElements("referee")
	if err != nil {
		return nil, fmt.Errorf("euroleague: legacy referees: %w", err)
	}

	out := make([]people.Referee, 0, len(elems))
	for i, attrs := range elems {
		ref, err := people.RefereeShape.Build(keys.Normalize(attrs))
		if err != nil {
			return nil, fmt.Errorf("euroleague: build legacy referee %d: %w", i, err)
		}
		out = append(out, ref)
	}
	logging.Debug(c.logger, "fetched records",
		logging.FieldAPIVersion, api.V1.String(),
		logging.FieldShape, people.RefereeShape.Name(),
		logging.FieldCount, len(out),
	)
	return out, nil
}
