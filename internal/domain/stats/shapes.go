package stats

import (
	"hoopster/internal/domain/games"
	"hoopster/internal/domain/people"
	"hoopster/internal/domain/teams"
	"hoopster/internal/record"
)

var Shape = record.NewShape("stats", Stats{},
	record.Int("time_played", func(s *Stats, v int) { s.TimePlayed = v }),
	record.Int("valuation", func(s *Stats, v int) { s.Valuation = v }),
	record.Int("points", func(s *Stats, v int) { s.Points = v }),
	record.Int("field_goals_made2", func(s *Stats, v int) { s.FieldGoalsMade2 = v }),
	record.Int("field_goals_attempted2", func(s *Stats, v int) { s.FieldGoalsAttempted2 = v }),
	record.Int("field_goals_made3", func(s *Stats, v int) { s.FieldGoalsMade3 = v }),
	record.Int("field_goals_attempted3", func(s *Stats, v int) { s.FieldGoalsAttempted3 = v }),
	record.Int("free_throws_made", func(s *Stats, v int) { s.FreeThrowsMade = v }),
	record.Int("free_throws_attempted", func(s *Stats, v int) { s.FreeThrowsAttempted = v }),
	record.Int("offensive_rebounds", func(s *Stats, v int) { s.OffensiveRebounds = v }),
	record.Int("defensive_rebounds", func(s *Stats, v int) { s.DefensiveRebounds = v }),
	record.Int("total_rebounds", func(s *Stats, v int) { s.TotalRebounds = v }),
	record.Int("assistances", func(s *Stats, v int) { s.Assistances = v }),
	record.Int("steals", func(s *Stats, v int) { s.Steals = v }),
	record.Int("turnovers", func(s *Stats, v int) { s.Turnovers = v }),
	record.Int("blocks_favour", func(s *Stats, v int) { s.BlocksFavour = v }),
	record.Int("blocks_against", func(s *Stats, v int) { s.BlocksAgainst = v }),
	record.Int("fouls_commited", func(s *Stats, v int) { s.FoulsCommited = v }),
	record.Int("fouls_received", func(s *Stats, v int) { s.FoulsReceived = v }),
	record.Float("plus_minus", func(s *Stats, v float64) { s.PlusMinus = v }),
)

var PlayerStatsShape = record.NewShape("player_stats", PlayerStats{},
	record.One("player", people.PersonShape, func(p *PlayerStats, v *people.Person) { p.Player = v }),
	record.One("stats", Shape, func(p *PlayerStats, v *Stats) { p.Stats = v }),
	record.String("team_code", func(p *PlayerStats, v string) { p.TeamCode = v }),
	record.Bool("starter", func(p *PlayerStats, v bool) { p.Starter = v }),
	record.String("dorsal", func(p *PlayerStats, v string) { p.Dorsal = v }),
)

var TeamStatsShape = record.NewShape("team_stats", TeamStats{},
	record.One("team", teams.Shape, func(t *TeamStats, v *teams.Team) { t.Team = v }),
	record.Many("players", PlayerStatsShape, func(t *TeamStats, v []PlayerStats) { t.Players = v }),
	record.One("totals", Shape, func(t *TeamStats, v *Stats) { t.Totals = v }),
	record.One("coach", people.PersonShape, func(t *TeamStats, v *people.Person) { t.Coach = v }),
)

var GameStatsShape = record.NewShape("game_stats", GameStats{},
	record.One("local", TeamStatsShape, func(g *GameStats, v *TeamStats) { g.Local = v }),
	record.One("road", TeamStatsShape, func(g *GameStats, v *TeamStats) { g.Road = v }),
)

var EntryShape = record.NewShape("record_entry", Entry{},
	record.String("category", func(e *Entry, v string) { e.Category = v }).Required(),
	record.Float("value", func(e *Entry, v float64) { e.Value = v }),
	record.One("player", people.PersonShape, func(e *Entry, v *people.Person) { e.Player = v }),
	record.One("club", teams.Shape, func(e *Entry, v *teams.Team) { e.Club = v }),
	record.One("game", games.Shape, func(e *Entry, v *games.Game) { e.Game = v }),
	record.String("date", func(e *Entry, v string) { e.Date = v }),
)

var PlayerHighShape = record.NewShape("player_high", PlayerHigh{},
	record.String("category", func(h *PlayerHigh, v string) { h.Category = v }).Required(),
	record.Float("value", func(h *PlayerHigh, v float64) { h.Value = v }),
	record.One("player", people.PersonShape, func(h *PlayerHigh, v *people.Person) { h.Player = v }),
	record.One("club", teams.Shape, func(h *PlayerHigh, v *teams.Team) { h.Club = v }),
	record.One("opponent", teams.Shape, func(h *PlayerHigh, v *teams.Team) { h.Opponent = v }),
	record.Int("game_code", func(h *PlayerHigh, v int) { h.GameCode = v }),
	record.String("season_code", func(h *PlayerHigh, v string) { h.SeasonCode = v }),
	record.String("date", func(h *PlayerHigh, v string) { h.Date = v }),
)
