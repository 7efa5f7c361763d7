package competitions

import "hoopster/internal/record"

var Shape = record.NewShape("competition", Competition{},
	record.String("code", func(c *Competition, v string) { c.Code = v }).Required(),
	record.String("name", func(c *Competition, v string) { c.Name = v }),
	record.String("alias", func(c *Competition, v string) { c.Alias = v }),
	record.String("type", func(c *Competition, v string) { c.Type = v }),
	record.StringMap("images", func(c *Competition, v map[string]string) { c.Images = v }),
)

var SeasonShape = record.NewShape("season", Season{},
	record.String("code", func(s *Season, v string) { s.Code = v }).Required(),
	record.String("name", func(s *Season, v string) { s.Name = v }),
	record.String("alias", func(s *Season, v string) { s.Alias = v }),
	record.String("competition_code", func(s *Season, v string) { s.CompetitionCode = v }),
	record.Int("year", func(s *Season, v int) { s.Year = v }),
	record.String("start_date", func(s *Season, v string) { s.StartDate = v }),
	record.Bool("active", func(s *Season, v bool) { s.Active = v }),
)

var PhaseShape = record.NewShape("phase", Phase{},
	record.String("code", func(p *Phase, v string) { p.Code = v }),
	record.String("alias", func(p *Phase, v string) { p.Alias = v }),
	record.String("name", func(p *Phase, v string) { p.Name = v }),
	record.Bool("is_group_phase", func(p *Phase, v bool) { p.IsGroupPhase = v }),
)
