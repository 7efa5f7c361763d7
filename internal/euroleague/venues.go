package euroleague

import (
	"context"

	"hoopster/internal/domain/venues"
)

func (c *Client) Venues(ctx context.Context, page Page) ([]venues.Venue, error) {
	return fetchList(ctx, c, venues.Shape, page.values(), "venues")
}

func (c *Client) Venue(ctx context.Context, code string) (venues.Venue, error) {
	code, err := requireCode("venue", code)
	if err != nil {
		return venues.Venue{}, err
	}
	return fetchOne(ctx, c, venues.Shape, "venues", code)
}
