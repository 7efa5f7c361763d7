package teams

import (
	"reflect"
	"testing"

	"hoopster/internal/keys"
)

func TestTeamShapeBuildsNestedVenueAndCountry(t *testing.T) {
	payload := keys.Normalize(map[string]any{
		"code":           "MAD",
		"name":           "Real Madrid",
		"isVirtual":      false,
		"country":        map[string]any{"code": "ESP", "name": "Spain"},
		"venue":          map[string]any{"code": "WIZ", "name": "WiZink Center", "capacity": 15500.0},
		"ticketsUrl":     "https://tickets.example",
		"twitterAccount": "@RMBaloncesto",
		"images":         map[string]any{"crest": "https://img/mad.png"},
	})

	team, err := Shape.Build(payload)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if team.Venue == nil || team.Venue.Capacity != 15500 {
		t.Fatalf("expected nested venue, got %+v", team.Venue)
	}
	if team.Country == nil || team.Country.Code != "ESP" {
		t.Fatalf("expected nested country, got %+v", team.Country)
	}
	if team.TicketsURL != "https://tickets.example" || team.Images["crest"] == "" {
		t.Fatalf("unexpected team %+v", team)
	}
}

func TestShapesCoverEveryField(t *testing.T) {
	if got, want := len(Shape.Describe()), reflect.TypeOf(Team{}).NumField(); got != want {
		t.Fatalf("team shape expected %d fields, got %d", want, got)
	}
	if got, want := len(VideoShape.Describe()), reflect.TypeOf(Video{}).NumField(); got != want {
		t.Fatalf("video shape expected %d fields, got %d", want, got)
	}
}
