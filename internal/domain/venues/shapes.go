package venues

import "hoopster/internal/record"

var Shape = record.NewShape("venue", Venue{},
	record.String("code", func(v *Venue, s string) { v.Code = s }).Required(),
	record.String("name", func(v *Venue, s string) { v.Name = s }),
	record.Int("capacity", func(v *Venue, n int) { v.Capacity = n }),
	record.String("address", func(v *Venue, s string) { v.Address = s }),
	record.StringMap("images", func(v *Venue, m map[string]string) { v.Images = m }),
	record.Bool("active", func(v *Venue, b bool) { v.Active = b }),
	record.String("notes", func(v *Venue, s string) { v.Notes = s }),
)
