package games

import (
	"hoopster/internal/domain/competitions"
	"hoopster/internal/domain/people"
	"hoopster/internal/domain/teams"
	"hoopster/internal/domain/venues"
	"hoopster/internal/record"
)

var PartialsShape = record.NewShape("partials", Partials{},
	record.Int("partials1", func(p *Partials, v int) { p.Partials1 = v }),
	record.Int("partials2", func(p *Partials, v int) { p.Partials2 = v }),
	record.Int("partials3", func(p *Partials, v int) { p.Partials3 = v }),
	record.Int("partials4", func(p *Partials, v int) { p.Partials4 = v }),
	record.StringMap("extra_periods", func(p *Partials, v map[string]string) { p.ExtraPeriods = v }),
)

var GameTeamShape = record.NewShape("game_team", GameTeam{},
	record.One("club", teams.Shape, func(g *GameTeam, v *teams.Team) { g.Club = v }),
	record.Int("score", func(g *GameTeam, v int) { g.Score = v }),
	record.Int("standings_local_score", func(g *GameTeam, v int) { g.StandingsLocalScore = v }),
	record.Int("standings_road_score", func(g *GameTeam, v int) { g.StandingsRoadScore = v }),
	record.One("partials", PartialsShape, func(g *GameTeam, v *Partials) { g.Partials = v }),
	record.One("coach", people.PersonShape, func(g *GameTeam, v *people.Person) { g.Coach = v }),
)

var Shape = record.NewShape("game", Game{},
	record.String("id", func(g *Game, v string) { g.ID = v }),
	record.String("identifier", func(g *Game, v string) { g.Identifier = v }),
	record.Int("game_code", func(g *Game, v int) { g.GameCode = v }),
	record.One("season", competitions.SeasonShape, func(g *Game, v *competitions.Season) { g.Season = v }),
	record.One("phase_type", competitions.PhaseShape, func(g *Game, v *competitions.Phase) { g.PhaseType = v }),
	record.Int("round", func(g *Game, v int) { g.Round = v }),
	record.String("date", func(g *Game, v string) { g.Date = v }),
	record.One("local", GameTeamShape, func(g *Game, v *GameTeam) { g.Local = v }),
	record.One("road", GameTeamShape, func(g *Game, v *GameTeam) { g.Road = v }),
	record.One("venue", venues.Shape, func(g *Game, v *venues.Venue) { g.Venue = v }),
	record.Int("audience", func(g *Game, v int) { g.Audience = v }),
	record.Bool("played", func(g *Game, v bool) { g.Played = v }),
	record.Bool("confirmed_date", func(g *Game, v bool) { g.ConfirmedDate = v }),
	record.Bool("confirmed_hour", func(g *Game, v bool) { g.ConfirmedHour = v }),
	record.Many("referees", people.PersonShape, func(g *Game, v []people.Person) { g.Referees = v }),
)
