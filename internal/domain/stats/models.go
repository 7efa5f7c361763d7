// Package stats holds box score and records records.
package stats

import (
	"hoopster/internal/domain/games"
	"hoopster/internal/domain/people"
	"hoopster/internal/domain/teams"
)

// Stats is a box score line. TimePlayed is in seconds.
type Stats struct {
	TimePlayed           int     `json:"time_played,omitempty" yaml:"time_played,omitempty"`
	Valuation            int     `json:"valuation" yaml:"valuation"`
	Points               int     `json:"points" yaml:"points"`
	FieldGoalsMade2      int     `json:"field_goals_made2" yaml:"field_goals_made2"`
	FieldGoalsAttempted2 int     `json:"field_goals_attempted2" yaml:"field_goals_attempted2"`
	FieldGoalsMade3      int     `json:"field_goals_made3" yaml:"field_goals_made3"`
	FieldGoalsAttempted3 int     `json:"field_goals_attempted3" yaml:"field_goals_attempted3"`
	FreeThrowsMade       int     `json:"free_throws_made" yaml:"free_throws_made"`
	FreeThrowsAttempted  int     `json:"free_throws_attempted" yaml:"free_throws_attempted"`
	OffensiveRebounds    int     `json:"offensive_rebounds" yaml:"offensive_rebounds"`
	DefensiveRebounds    int     `json:"defensive_rebounds" yaml:"defensive_rebounds"`
	TotalRebounds        int     `json:"total_rebounds" yaml:"total_rebounds"`
	Assistances          int     `json:"assistances" yaml:"assistances"`
	Steals               int     `json:"steals" yaml:"steals"`
	Turnovers            int     `json:"turnovers" yaml:"turnovers"`
	BlocksFavour         int     `json:"blocks_favour" yaml:"blocks_favour"`
	BlocksAgainst        int     `json:"blocks_against" yaml:"blocks_against"`
	FoulsCommited        int     `json:"fouls_commited" yaml:"fouls_commited"`
	FoulsReceived        int     `json:"fouls_received" yaml:"fouls_received"`
	PlusMinus            float64 `json:"plus_minus" yaml:"plus_minus"`
}

// PlayerStats is a single player's line in a game.
type PlayerStats struct {
	Player   *people.Person `json:"player,omitempty" yaml:"player,omitempty"`
	Stats    *Stats         `json:"stats,omitempty" yaml:"stats,omitempty"`
	TeamCode string         `json:"team_code,omitempty" yaml:"team_code,omitempty"`
	Starter  bool           `json:"starter" yaml:"starter"`
	Dorsal   string         `json:"dorsal,omitempty" yaml:"dorsal,omitempty"`
}

// TeamStats groups the player lines and totals of one side.
type TeamStats struct {
	Team    *teams.Team    `json:"team,omitempty" yaml:"team,omitempty"`
	Players []PlayerStats  `json:"players,omitempty" yaml:"players,omitempty"`
	Totals  *Stats         `json:"totals,omitempty" yaml:"totals,omitempty"`
	Coach   *people.Person `json:"coach,omitempty" yaml:"coach,omitempty"`
}

// GameStats is the full box score of a game.
type GameStats struct {
	Local *TeamStats `json:"local,omitempty" yaml:"local,omitempty"`
	Road  *TeamStats `json:"road,omitempty" yaml:"road,omitempty"`
}

// Entry is a season or game record, e.g. most points scored in a game.
type Entry struct {
	Category string         `json:"category" yaml:"category"`
	Value    float64        `json:"value" yaml:"value"`
	Player   *people.Person `json:"player,omitempty" yaml:"player,omitempty"`
	Club     *teams.Team    `json:"club,omitempty" yaml:"club,omitempty"`
	Game     *games.Game    `json:"game,omitempty" yaml:"game,omitempty"`
	Date     string         `json:"date,omitempty" yaml:"date,omitempty"`
}

// PlayerHigh is a player's career or season high in a category.
type PlayerHigh struct {
	Category   string         `json:"category" yaml:"category"`
	Value      float64        `json:"value" yaml:"value"`
	Player     *people.Person `json:"player,omitempty" yaml:"player,omitempty"`
	Club       *teams.Team    `json:"club,omitempty" yaml:"club,omitempty"`
	Opponent   *teams.Team    `json:"opponent,omitempty" yaml:"opponent,omitempty"`
	GameCode   int            `json:"game_code,omitempty" yaml:"game_code,omitempty"`
	SeasonCode string         `json:"season_code,omitempty" yaml:"season_code,omitempty"`
	Date       string         `json:"date,omitempty" yaml:"date,omitempty"`
}

// Player returns the line for the player with the given code, searching both sides.
func (g GameStats) Player(code string) (PlayerStats, bool) {
	for _, side := range []*TeamStats{g.Local, g.Road} {
		if side == nil {
			continue
		}
		for _, p := range side.Players {
			if p.Player != nil && p.Player.Code == code {
				return p, true
			}
		}
	}
	return PlayerStats{}, false
}
