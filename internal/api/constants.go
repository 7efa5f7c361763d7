package api

import "time"

const (
	defaultV1URL       = "https://www.euroleague.net/euroleague/api/"
	defaultV2URL       = "https://api.euroleague.net/api/v2.0/"
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "hoopster/dev"

	headerRequestID = "X-Request-ID"
	// Error messages quote at most this many bytes of the response body.
	maxErrorBody = 512
)

var validMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}
