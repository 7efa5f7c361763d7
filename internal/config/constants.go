package config

import "time"

const (
	envDotEnvFile   = "HOOPSTER_ENV_FILE"
	envAPIV1URL     = "EUROLEAGUE_API_V1_URL"
	envAPIV2URL     = "EUROLEAGUE_API_V2_URL"
	envUserAgent    = "EUROLEAGUE_USER_AGENT"
	envHTTPTimeout  = "EUROLEAGUE_HTTP_TIMEOUT"
	envCompetition  = "EUROLEAGUE_COMPETITION"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultDotEnvFile  = ".env"
	defaultHTTPTimeout = 30 * Duration(time.Second)
	defaultCompetition = "E"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultServiceName = "hoopster"
)
