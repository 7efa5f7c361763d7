// Package people holds the records describing persons registered with
// Euroleague Basketball: players, coaches and referees.
package people

// Country identifies a country by its federation code.
type Country struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Bio is the free-text biography attached to a person profile.
type Bio struct {
	Career string `json:"career,omitempty" yaml:"career,omitempty"`
	Misc   string `json:"misc,omitempty" yaml:"misc,omitempty"`
}

// Referee is a registered game official.
type Referee struct {
	Code        string            `json:"code" yaml:"code"`
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Alias       string            `json:"alias,omitempty" yaml:"alias,omitempty"`
	Nationality string            `json:"nationality,omitempty" yaml:"nationality,omitempty"`
	Country     *Country          `json:"country,omitempty" yaml:"country,omitempty"`
	Images      map[string]string `json:"images,omitempty" yaml:"images,omitempty"`
	Active      bool              `json:"active" yaml:"active"`
}

// Person is any registered person (player, coach, staff).
// Height is in centimetres and Weight in kilograms.
type Person struct {
	Code            string            `json:"code" yaml:"code"`
	Name            string            `json:"name,omitempty" yaml:"name,omitempty"`
	Alias           string            `json:"alias,omitempty" yaml:"alias,omitempty"`
	AliasRaw        string            `json:"alias_raw,omitempty" yaml:"alias_raw,omitempty"`
	PassportName    string            `json:"passport_name,omitempty" yaml:"passport_name,omitempty"`
	PassportSurname string            `json:"passport_surname,omitempty" yaml:"passport_surname,omitempty"`
	JerseyName      string            `json:"jersey_name,omitempty" yaml:"jersey_name,omitempty"`
	AbbreviatedName string            `json:"abbreviated_name,omitempty" yaml:"abbreviated_name,omitempty"`
	Country         *Country          `json:"country,omitempty" yaml:"country,omitempty"`
	Height          int               `json:"height,omitempty" yaml:"height,omitempty"`
	Weight          int               `json:"weight,omitempty" yaml:"weight,omitempty"`
	BirthDate       string            `json:"birth_date,omitempty" yaml:"birth_date,omitempty"`
	BirthCountry    *Country          `json:"birth_country,omitempty" yaml:"birth_country,omitempty"`
	TwitterAccount  string            `json:"twitter_account,omitempty" yaml:"twitter_account,omitempty"`
	Images          map[string]string `json:"images,omitempty" yaml:"images,omitempty"`
	Bio             *Bio              `json:"bio,omitempty" yaml:"bio,omitempty"`
}
