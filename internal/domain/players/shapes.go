package players

import (
	"hoopster/internal/domain/competitions"
	"hoopster/internal/domain/people"
	"hoopster/internal/domain/teams"
	"hoopster/internal/record"
)

var Shape = record.NewShape("player", Player{},
	record.One("person", people.PersonShape, func(p *Player, v *people.Person) { p.Person = v }),
	record.String("type", func(p *Player, v string) { p.Type = v }),
	record.String("type_name", func(p *Player, v string) { p.TypeName = v }),
	record.Bool("active", func(p *Player, v bool) { p.Active = v }),
	record.String("start_date", func(p *Player, v string) { p.StartDate = v }),
	record.String("end_date", func(p *Player, v string) { p.EndDate = v }),
	record.Int("order", func(p *Player, v int) { p.Order = v }),
	record.String("dorsal", func(p *Player, v string) { p.Dorsal = v }),
	record.Int("position", func(p *Player, v int) { p.Position = v }),
	record.String("position_name", func(p *Player, v string) { p.PositionName = v }),
	record.String("last_team", func(p *Player, v string) { p.LastTeam = v }),
	record.StringMap("images", func(p *Player, v map[string]string) { p.Images = v }),
	record.One("club", teams.Shape, func(p *Player, v *teams.Team) { p.Club = v }),
	record.One("season", competitions.SeasonShape, func(p *Player, v *competitions.Season) { p.Season = v }),
)
