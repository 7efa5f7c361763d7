package teams

import (
	"hoopster/internal/domain/people"
	"hoopster/internal/domain/venues"
	"hoopster/internal/record"
)

var Shape = record.NewShape("club", Team{},
	record.String("code", func(t *Team, v string) { t.Code = v }).Required(),
	record.String("name", func(t *Team, v string) { t.Name = v }),
	record.String("alias", func(t *Team, v string) { t.Alias = v }),
	record.Bool("is_virtual", func(t *Team, v bool) { t.IsVirtual = v }),
	record.One("country", people.CountryShape, func(t *Team, v *people.Country) { t.Country = v }),
	record.String("address", func(t *Team, v string) { t.Address = v }),
	record.String("website", func(t *Team, v string) { t.Website = v }),
	record.String("tickets_url", func(t *Team, v string) { t.TicketsURL = v }),
	record.String("twitter_account", func(t *Team, v string) { t.TwitterAccount = v }),
	record.String("instagram_account", func(t *Team, v string) { t.InstagramAccount = v }),
	record.String("facebook_account", func(t *Team, v string) { t.FacebookAccount = v }),
	record.One("venue", venues.Shape, func(t *Team, v *venues.Venue) { t.Venue = v }),
	record.String("city", func(t *Team, v string) { t.City = v }),
	record.String("president", func(t *Team, v string) { t.President = v }),
	record.String("phone", func(t *Team, v string) { t.Phone = v }),
	record.String("fax", func(t *Team, v string) { t.Fax = v }),
	record.StringMap("images", func(t *Team, v map[string]string) { t.Images = v }),
)

var VideoShape = record.NewShape("video", Video{},
	record.String("id", func(v *Video, s string) { v.ID = s }).Required(),
	record.String("title", func(v *Video, s string) { v.Title = s }),
	record.String("url", func(v *Video, s string) { v.URL = s }),
	record.String("thumbnail", func(v *Video, s string) { v.Thumbnail = s }),
	record.String("date", func(v *Video, s string) { v.Date = s }),
	record.String("club_code", func(v *Video, s string) { v.ClubCode = s }),
)
