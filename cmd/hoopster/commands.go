package main

import (
	"context"
	"fmt"

	"hoopster/internal/euroleague"
)

type command struct {
	name string
	args []string
	help string
	run  func(ctx context.Context, c *euroleague.Client, opts options, args []string) (any, error)
}

var commands = []command{
	{"referees", nil, "list referees", func(ctx context.Context, c *euroleague.Client, o options, _ []string) (any, error) {
		return c.Referees(ctx, page(o))
	}},
	{"referee", []string{"CODE"}, "show one referee", func(ctx context.Context, c *euroleague.Client, _ options, a []string) (any, error) {
		return c.Referee(ctx, a[0])
	}},
	{"referees-v1", nil, "list referees from the legacy XML API", func(ctx context.Context, c *euroleague.Client, _ options, _ []string) (any, error) {
		return c.LegacyReferees(ctx)
	}},
	{"venues", nil, "list venues", func(ctx context.Context, c *euroleague.Client, o options, _ []string) (any, error) {
		return c.Venues(ctx, page(o))
	}},
	{"venue", []string{"CODE"}, "show one venue", func(ctx context.Context, c *euroleague.Client, _ options, a []string) (any, error) {
		return c.Venue(ctx, a[0])
	}},
	{"people", nil, "list people", func(ctx context.Context, c *euroleague.Client, o options, _ []string) (any, error) {
		return c.People(ctx, page(o))
	}},
	{"person", []string{"CODE"}, "show a person with their bio", func(ctx context.Context, c *euroleague.Client, _ options, a []string) (any, error) {
		return c.PersonProfile(ctx, a[0])
	}},
	{"clubs", nil, "list clubs", func(ctx context.Context, c *euroleague.Client, o options, _ []string) (any, error) {
		return c.Clubs(ctx, page(o))
	}},
	{"club", []string{"CODE"}, "show one club", func(ctx context.Context, c *euroleague.Client, _ options, a []string) (any, error) {
		return c.Club(ctx, a[0])
	}},
	{"videos", []string{"CLUB"}, "latest videos of a club", func(ctx context.Context, c *euroleague.Client, _ options, a []string) (any, error) {
		return c.LatestTeamVideos(ctx, a[0])
	}},
	{"competition", nil, "show the selected competition", func(ctx context.Context, c *euroleague.Client, o options, _ []string) (any, error) {
		return c.Competition(o.competition).Info(ctx)
	}},
	{"seasons", nil, "list seasons of the competition", func(ctx context.Context, c *euroleague.Client, o options, _ []string) (any, error) {
		return c.Competition(o.competition).Seasons(ctx)
	}},
	{"games", []string{"SEASON"}, "list games of a season", func(ctx context.Context, c *euroleague.Client, o options, a []string) (any, error) {
		return c.Competition(o.competition).Games(ctx, a[0], page(o))
	}},
	{"game", []string{"SEASON", "GAME"}, "show one game", func(ctx context.Context, c *euroleague.Client, o options, a []string) (any, error) {
		code, err := parseGameCode(a[1])
		if err != nil {
			return nil, err
		}
		return c.Competition(o.competition).Game(ctx, a[0], code)
	}},
	{"stats", []string{"SEASON", "GAME"}, "box score of one game", func(ctx context.Context, c *euroleague.Client, o options, a []string) (any, error) {
		code, err := parseGameCode(a[1])
		if err != nil {
			return nil, err
		}
		return c.Competition(o.competition).GameStats(ctx, a[0], code)
	}},
	{"roster", []string{"SEASON", "CLUB"}, "club roster for a season", func(ctx context.Context, c *euroleague.Client, o options, a []string) (any, error) {
		return c.Competition(o.competition).Roster(ctx, a[0], a[1])
	}},
	{"season-records", []string{"SEASON"}, "individual records of a season", func(ctx context.Context, c *euroleague.Client, o options, a []string) (any, error) {
		return c.Competition(o.competition).SeasonRecords(ctx, a[0])
	}},
	{"game-records", []string{"SEASON"}, "single game team records of a season", func(ctx context.Context, c *euroleague.Client, o options, a []string) (any, error) {
		return c.Competition(o.competition).GameRecords(ctx, a[0])
	}},
	{"player-highs", []string{"SEASON"}, "player highs of a season", func(ctx context.Context, c *euroleague.Client, o options, a []string) (any, error) {
		return c.Competition(o.competition).PlayerHighs(ctx, a[0])
	}},
}

func page(o options) euroleague.Page {
	return euroleague.Page{Offset: o.offset, Limit: o.limit}
}

func dispatch(ctx context.Context, client *euroleague.Client, opts options, name string, args []string) (any, error) {
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if len(args) != len(c.args) {
			return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", errUsage, name, len(c.args), len(args))
		}
		return c.run(ctx, client, opts, args)
	}
	return nil, fmt.Errorf("%w: unknown command %q", errUsage, name)
}
