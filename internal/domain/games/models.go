// Package games holds game records.
package games

import (
	"time"

	"hoopster/internal/domain/competitions"
	"hoopster/internal/domain/people"
	"hoopster/internal/domain/teams"
	"hoopster/internal/domain/venues"
	"hoopster/internal/timeutil"
)

// Partials are the points scored per quarter. ExtraPeriods is keyed by overtime number.
type Partials struct {
	Partials1    int               `json:"partials1" yaml:"partials1"`
	Partials2    int               `json:"partials2" yaml:"partials2"`
	Partials3    int               `json:"partials3" yaml:"partials3"`
	Partials4    int               `json:"partials4" yaml:"partials4"`
	ExtraPeriods map[string]string `json:"extra_periods,omitempty" yaml:"extra_periods,omitempty"`
}

// GameTeam is one side of a game.
type GameTeam struct {
	Club                *teams.Team    `json:"club,omitempty" yaml:"club,omitempty"`
	Score               int            `json:"score" yaml:"score"`
	StandingsLocalScore int            `json:"standings_local_score,omitempty" yaml:"standings_local_score,omitempty"`
	StandingsRoadScore  int            `json:"standings_road_score,omitempty" yaml:"standings_road_score,omitempty"`
	Partials            *Partials      `json:"partials,omitempty" yaml:"partials,omitempty"`
	Coach               *people.Person `json:"coach,omitempty" yaml:"coach,omitempty"`
}

// Game is a scheduled or played game.
type Game struct {
	ID            string               `json:"id,omitempty" yaml:"id,omitempty"`
	Identifier    string               `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	GameCode      int                  `json:"game_code" yaml:"game_code"`
	Season        *competitions.Season `json:"season,omitempty" yaml:"season,omitempty"`
	PhaseType     *competitions.Phase  `json:"phase_type,omitempty" yaml:"phase_type,omitempty"`
	Round         int                  `json:"round,omitempty" yaml:"round,omitempty"`
	Date          string               `json:"date,omitempty" yaml:"date,omitempty"`
	Local         *GameTeam            `json:"local,omitempty" yaml:"local,omitempty"`
	Road          *GameTeam            `json:"road,omitempty" yaml:"road,omitempty"`
	Venue         *venues.Venue        `json:"venue,omitempty" yaml:"venue,omitempty"`
	Audience      int                  `json:"audience,omitempty" yaml:"audience,omitempty"`
	Played        bool                 `json:"played" yaml:"played"`
	ConfirmedDate bool                 `json:"confirmed_date,omitempty" yaml:"confirmed_date,omitempty"`
	ConfirmedHour bool                 `json:"confirmed_hour,omitempty" yaml:"confirmed_hour,omitempty"`
	Referees      []people.Person      `json:"referees,omitempty" yaml:"referees,omitempty"`
}

// Winner returns the side with more points, or nil for unplayed or tied games.
func (g Game) Winner() *GameTeam {
	if !g.Played || g.Local == nil || g.Road == nil {
		return nil
	}
	switch {
	case g.Local.Score > g.Road.Score:
		return g.Local
	case g.Road.Score > g.Local.Score:
		return g.Road
	default:
		return nil
	}
}

// StartTime parses Date. The API sends local tip-off times without a zone, so
// callers pass the venue's location (nil means UTC).
func (g Game) StartTime(loc *time.Location) (time.Time, error) {
	return timeutil.ParseAPITime(g.Date, loc)
}
