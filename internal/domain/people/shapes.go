package people

import "hoopster/internal/record"

var CountryShape = record.NewShape("country", Country{},
	record.String("code", func(c *Country, v string) { c.Code = v }).Required(),
	record.String("name", func(c *Country, v string) { c.Name = v }),
)

var BioShape = record.NewShape("bio", Bio{},
	record.String("career", func(b *Bio, v string) { b.Career = v }),
	record.String("misc", func(b *Bio, v string) { b.Misc = v }),
)

var RefereeShape = record.NewShape("referee", Referee{},
	record.String("code", func(r *Referee, v string) { r.Code = v }).Required(),
	record.String("name", func(r *Referee, v string) { r.Name = v }),
	record.String("alias", func(r *Referee, v string) { r.Alias = v }),
	record.String("nationality", func(r *Referee, v string) { r.Nationality = v }),
	record.One("country", CountryShape, func(r *Referee, v *Country) { r.Country = v }),
	record.StringMap("images", func(r *Referee, v map[string]string) { r.Images = v }),
	record.Bool("active", func(r *Referee, v bool) { r.Active = v }),
)

var PersonShape = record.NewShape("person", Person{},
	record.String("code", func(p *Person, v string) { p.Code = v }).Required(),
	record.String("name", func(p *Person, v string) { p.Name = v }),
	record.String("alias", func(p *Person, v string) { p.Alias = v }),
	record.String("alias_raw", func(p *Person, v string) { p.AliasRaw = v }),
	record.String("passport_name", func(p *Person, v string) { p.PassportName = v }),
	record.String("passport_surname", func(p *Person, v string) { p.PassportSurname = v }),
	record.String("jersey_name", func(p *Person, v string) { p.JerseyName = v }),
	record.String("abbreviated_name", func(p *Person, v string) { p.AbbreviatedName = v }),
	record.One("country", CountryShape, func(p *Person, v *Country) { p.Country = v }),
	record.Int("height", func(p *Person, v int) { p.Height = v }),
	record.Int("weight", func(p *Person, v int) { p.Weight = v }),
	record.String("birth_date", func(p *Person, v string) { p.BirthDate = v }),
	record.One("birth_country", CountryShape, func(p *Person, v *Country) { p.BirthCountry = v }),
	record.String("twitter_account", func(p *Person, v string) { p.TwitterAccount = v }),
	record.StringMap("images", func(p *Person, v map[string]string) { p.Images = v }),
	record.One("bio", BioShape, func(p *Person, v *Bio) { p.Bio = v }),
)
