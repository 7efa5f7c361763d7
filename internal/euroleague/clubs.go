package euroleague

import (
	"context"

	"hoopster/internal/domain/teams"
)

func (c *Client) Clubs(ctx context.Context, page Page) ([]teams.Team, error) {
	return fetchList(ctx, c, teams.Shape, page.values(), "clubs")
}

func (c *Client) Club(ctx context.Context, code string) (teams.Team, error) {
	code, err := requireCode("club", code)
	if err != nil {
		return teams.Team{}, err
	}
	return fetchOne(ctx, c, teams.Shape, "clubs", code)
}

// LatestTeamVideos lists the newest videos published for a club. It does not
// depend on the competition.
func (c *Client) LatestTeamVideos(ctx context.Context, clubCode string) ([]teams.Video, error) {
	clubCode, err := requireCode("club", clubCode)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, c, teams.VideoShape, nil, "clubs", clubCode, "videos")
}
