// Package players holds club roster records.
package players

import (
	"hoopster/internal/domain/competitions"
	"hoopster/internal/domain/people"
	"hoopster/internal/domain/teams"
)

// Player is a person's registration on a club roster for one season.
type Player struct {
	Person       *people.Person       `json:"person,omitempty" yaml:"person,omitempty"`
	Type         string               `json:"type,omitempty" yaml:"type,omitempty"`
	TypeName     string               `json:"type_name,omitempty" yaml:"type_name,omitempty"`
	Active       bool                 `json:"active" yaml:"active"`
	StartDate    string               `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate      string               `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Order        int                  `json:"order,omitempty" yaml:"order,omitempty"`
	Dorsal       string               `json:"dorsal,omitempty" yaml:"dorsal,omitempty"`
	Position     int                  `json:"position,omitempty" yaml:"position,omitempty"`
	PositionName string               `json:"position_name,omitempty" yaml:"position_name,omitempty"`
	LastTeam     string               `json:"last_team,omitempty" yaml:"last_team,omitempty"`
	Images       map[string]string    `json:"images,omitempty" yaml:"images,omitempty"`
	Club         *teams.Team          `json:"club,omitempty" yaml:"club,omitempty"`
	Season       *competitions.Season `json:"season,omitempty" yaml:"season,omitempty"`
}

// IsPlayer reports whether the roster entry is a player rather than staff.
func (p Player) IsPlayer() bool {
	return p.Type == "J"
}
