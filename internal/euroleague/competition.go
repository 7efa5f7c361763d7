package euroleague

import (
	"context"
	"strings"

	"hoopster/internal/domain/competitions"
	"hoopster/internal/domain/games"
	"hoopster/internal/domain/players"
	"hoopster/internal/domain/stats"
)

// CompetitionClient binds accessors to one competition code.
type CompetitionClient struct {
	client *Client
	code   string
}

// Competition binds the client to a competition code such as "E" or "U".
func (c *Client) Competition(code string) CompetitionClient {
	return CompetitionClient{client: c, code: strings.ToUpper(strings.TrimSpace(code))}
}

// Euroleague is Competition(competitions.CodeEuroleague).
func (c *Client) Euroleague() CompetitionClient {
	return c.Competition(competitions.CodeEuroleague)
}

// Eurocup is Competition(competitions.CodeEurocup).
func (c *Client) Eurocup() CompetitionClient {
	return c.Competition(competitions.CodeEurocup)
}

// Code returns the bound competition code.
func (cc CompetitionClient) Code() string {
	return cc.code
}

func (cc CompetitionClient) Info(ctx context.Context) (competitions.Competition, error) {
	code, err := requireCode("competition", cc.code)
	if err != nil {
		return competitions.Competition{}, err
	}
	return fetchOne(ctx, cc.client, competitions.Shape, "competitions", code)
}

func (cc CompetitionClient) Seasons(ctx context.Context) ([]competitions.Season, error) {
	code, err := requireCode("competition", cc.code)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, cc.client, competitions.SeasonShape, nil, "competitions", code, "seasons")
}

func (cc CompetitionClient) Games(ctx context.Context, season string, page Page) ([]games.Game, error) {
	segs, err := cc.seasonPath(season)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, cc.client, games.Shape, page.values(), append(segs, "games")...)
}

func (cc CompetitionClient) Game(ctx context.Context, season string, gameCode int) (games.Game, error) {
	segs, err := cc.seasonPath(season)
	if err != nil {
		return games.Game{}, err
	}
	return fetchOne(ctx, cc.client, games.Shape, append(segs, "games", gameCode)...)
}

// GameStats returns the box score of one game.
func (cc CompetitionClient) GameStats(ctx context.Context, season string, gameCode int) (stats.GameStats, error) {
	segs, err := cc.seasonPath(season)
	if err != nil {
		return stats.GameStats{}, err
	}
	return fetchOne(ctx, cc.client, stats.GameStatsShape, append(segs, "games", gameCode, "stats")...)
}

// Roster lists the people registered with a club for a season.
func (cc CompetitionClient) Roster(ctx context.Context, season, clubCode string) ([]players.Player, error) {
	segs, err := cc.seasonPath(season)
	if err != nil {
		return nil, err
	}
	clubCode, err = requireCode("club", clubCode)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, cc.client, players.Shape, nil, append(segs, "clubs", clubCode, "people")...)
}

// SeasonRecords lists the individual records set during a season.
func (cc CompetitionClient) SeasonRecords(ctx context.Context, season string) ([]stats.Entry, error) {
	segs, err := cc.seasonPath(season)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, cc.client, stats.EntryShape, nil, append(segs, "records")...)
}

// GameRecords lists the team records set in single games during a season.
func (cc CompetitionClient) GameRecords(ctx context.Context, season string) ([]stats.Entry, error) {
	segs, err := cc.seasonPath(season)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, cc.client, stats.EntryShape, nil, append(segs, "records", "games")...)
}

func (cc CompetitionClient) PlayerHighs(ctx context.Context, season string) ([]stats.PlayerHigh, error) {
	segs, err := cc.seasonPath(season)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, cc.client, stats.PlayerHighShape, nil, append(segs, "records", "playerhighs")...)
}

func (cc CompetitionClient) seasonPath(season string) ([]any, error) {
	code, err := requireCode("competition", cc.code)
	if err != nil {
		return nil, err
	}
	season, err = requireCode("season", season)
	if err != nil {
		return nil, err
	}
	return []any{"competitions", code, "seasons", season}, nil
}
