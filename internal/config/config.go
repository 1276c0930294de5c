package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/premoball/premo-api/internal/platform/logging"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// DefaultSeasonID is the season scoping every stat and percentile lookup.
// It is a deployment constant, never client-supplied.
const DefaultSeasonID = 719

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string

	DBURL          string
	DBQueryTimeout time.Duration
	SeasonID       int64

	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string

	UptraceEnabled bool
	UptraceDSN     string

	PprofEnabled bool
	PprofAddr    string

	PyroscopeEnabled           bool
	PyroscopeAppName           string
	PyroscopeServerAddress     string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required")
	}

	dbQueryTimeout, err := time.ParseDuration(getEnv("DB_QUERY_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_QUERY_TIMEOUT: %w", err)
	}
	if dbQueryTimeout <= 0 {
		return Config{}, fmt.Errorf("DB_QUERY_TIMEOUT must be > 0")
	}

	seasonID, err := getEnvAsInt64("SEASON_ID", DefaultSeasonID)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEASON_ID: %w", err)
	}
	if seasonID <= 0 {
		return Config{}, fmt.Errorf("SEASON_ID must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	serviceName := strings.TrimSpace(getEnv("SERVICE_NAME", "premo-api"))

	return Config{
		AppEnv:         appEnv,
		ServiceName:    serviceName,
		ServiceVersion: strings.TrimSpace(getEnv("SERVICE_VERSION", "dev")),
		HTTPAddr:       strings.TrimSpace(getEnv("HTTP_ADDR", ":3000")),

		DBURL:          dbURL,
		DBQueryTimeout: dbQueryTimeout,
		SeasonID:       seasonID,

		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeAppName:           strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", serviceName)),
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,

		LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func parseAppEnv(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case EnvDev, EnvProd:
		return normalized, nil
	default:
		return "", fmt.Errorf("APP_ENV must be one of %q, %q", EnvDev, EnvProd)
	}
}

func parseLogLevel(value string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) (int64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}
