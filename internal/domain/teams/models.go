// Package teams holds club records.
// Kept in its own package so games, stats and rosters can share the club shape.
package teams

import (
	"hoopster/internal/domain/people"
	"hoopster/internal/domain/venues"
)

// Team is a club registered with Euroleague Basketball.
type Team struct {
	Code             string            `json:"code" yaml:"code"`
	Name             string            `json:"name,omitempty" yaml:"name,omitempty"`
	Alias            string            `json:"alias,omitempty" yaml:"alias,omitempty"`
	IsVirtual        bool              `json:"is_virtual,omitempty" yaml:"is_virtual,omitempty"`
	Country          *people.Country   `json:"country,omitempty" yaml:"country,omitempty"`
	Address          string            `json:"address,omitempty" yaml:"address,omitempty"`
	Website          string            `json:"website,omitempty" yaml:"website,omitempty"`
	TicketsURL       string            `json:"tickets_url,omitempty" yaml:"tickets_url,omitempty"`
	TwitterAccount   string            `json:"twitter_account,omitempty" yaml:"twitter_account,omitempty"`
	InstagramAccount string            `json:"instagram_account,omitempty" yaml:"instagram_account,omitempty"`
	FacebookAccount  string            `json:"facebook_account,omitempty" yaml:"facebook_account,omitempty"`
	Venue            *venues.Venue     `json:"venue,omitempty" yaml:"venue,omitempty"`
	City             string            `json:"city,omitempty" yaml:"city,omitempty"`
	President        string            `json:"president,omitempty" yaml:"president,omitempty"`
	Phone            string            `json:"phone,omitempty" yaml:"phone,omitempty"`
	Fax              string            `json:"fax,omitempty" yaml:"fax,omitempty"`
	Images           map[string]string `json:"images,omitempty" yaml:"images,omitempty"`
}

// Video is a club video published on the Euroleague site.
type Video struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Date      string `json:"date,omitempty" yaml:"date,omitempty"`
	ClubCode  string `json:"club_code,omitempty" yaml:"club_code,omitempty"`
}
