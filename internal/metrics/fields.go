package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrEndpoint = "endpoint"
	AttrStatus   = "status"
)
