// Package venues holds arena records.
package venues

// Venue is an arena where games are played.
type Venue struct {
	Code     string            `json:"code" yaml:"code"`
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Capacity int               `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Address  string            `json:"address,omitempty" yaml:"address,omitempty"`
	Images   map[string]string `json:"images,omitempty" yaml:"images,omitempty"`
	Active   bool              `json:"active" yaml:"active"`
	Notes    string            `json:"notes,omitempty" yaml:"notes,omitempty"`
}
