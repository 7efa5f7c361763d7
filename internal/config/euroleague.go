package config

import "strings"

// EuroleagueConfig controls how we talk to the Euroleague APIs.
// Empty URLs mean the public defaults.
type EuroleagueConfig struct {
	V1URL       string
	V2URL       string
	UserAgent   string
	HTTPTimeout Duration
	Competition string
}

func loadEuroleague() EuroleagueConfig {
	return EuroleagueConfig{
		V1URL:       envOrDefault(envAPIV1URL, ""),
		V2URL:       envOrDefault(envAPIV2URL, ""),
		UserAgent:   envOrDefault(envUserAgent, ""),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		Competition: strings.ToUpper(envOrDefault(envCompetition, defaultCompetition)),
	}
}
