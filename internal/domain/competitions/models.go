// Package competitions holds competition, season and phase records.
package competitions

import (
	"time"

	"hoopster/internal/timeutil"
)

// Competition codes used by the API.
const (
	CodeEuroleague = "E"
	CodeEurocup    = "U"
)

// Competition describes a tournament such as the Euroleague or the Eurocup.
type Competition struct {
	Code   string            `json:"code" yaml:"code"`
	Name   string            `json:"name,omitempty" yaml:"name,omitempty"`
	Alias  string            `json:"alias,omitempty" yaml:"alias,omitempty"`
	Type   string            `json:"type,omitempty" yaml:"type,omitempty"`
	Images map[string]string `json:"images,omitempty" yaml:"images,omitempty"`
}

// Season is one edition of a competition, e.g. "E2023".
type Season struct {
	Code            string `json:"code" yaml:"code"`
	Name            string `json:"name,omitempty" yaml:"name,omitempty"`
	Alias           string `json:"alias,omitempty" yaml:"alias,omitempty"`
	CompetitionCode string `json:"competition_code,omitempty" yaml:"competition_code,omitempty"`
	Year            int    `json:"year,omitempty" yaml:"year,omitempty"`
	StartDate       string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	Active          bool   `json:"active" yaml:"active"`
}

// Phase is a stage of a season (regular season, playoffs, final four).
type Phase struct {
	Code         string `json:"code,omitempty" yaml:"code,omitempty"`
	Alias        string `json:"alias,omitempty" yaml:"alias,omitempty"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	IsGroupPhase bool   `json:"is_group_phase,omitempty" yaml:"is_group_phase,omitempty"`
}

// Start parses StartDate as UTC.
func (s Season) Start() (time.Time, error) {
	return timeutil.ParseAPITime(s.StartDate, time.UTC)
}
