package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the gatekit
// demo service. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file, with built-in defaults filling whatever remains unset.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token codec parameters.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log configures the process-wide leveled logger's sink.
	Log Log `envPrefix:"LOG_"`

	// AccessLog configures the access-log middleware's sink.
	AccessLog AccessLog `envPrefix:"ACCESS_LOG_"`

	// Pipeline holds the middleware chain's policy knobs: denylist, auth
	// exemptions, and rate limiting.
	Pipeline Pipeline `envPrefix:"PIPELINE_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged after environment variables
	// and flags. Populated via the CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the token codec parameters shared by the login handler and the
// auth middleware.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify tokens.
	// Must be kept confidential; the codec's built-in fallback secret is for
	// development only.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration specifies how long an issued token remains valid
	// (e.g. "24h"). Zero falls back to the codec default of 15 days.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log configures the leveled logger's sink: output targets and the directory
// holding the per-severity rotating files.
type Log struct {
	// Console enables colorized console output.
	// Env: LOG_CONSOLE
	Console bool `env:"CONSOLE"`

	// FileOut enables per-severity rotating file output.
	// Env: LOG_FILE_OUT
	FileOut bool `env:"FILE_OUT"`

	// Dir is the root directory of the rotating files, e.g. "logs" produces
	// "logs/info/2006-01-02.log" and siblings.
	// Env: LOG_DIR
	Dir string `env:"DIR"`
}

// AccessLog configures the access-log middleware's sink.
type AccessLog struct {
	// Console enables colorized console output.
	// Env: ACCESS_LOG_CONSOLE
	Console bool `env:"CONSOLE"`

	// FileOut enables the rotating access file.
	// Env: ACCESS_LOG_FILE_OUT
	FileOut bool `env:"FILE_OUT"`

	// Dir is the root directory of the rotating access file.
	// Env: ACCESS_LOG_DIR
	Dir string `env:"DIR"`

	// Tag is the line prefix of every access record, e.g. "[GATE]".
	// Env: ACCESS_LOG_TAG
	Tag string `env:"TAG"`
}

// Pipeline holds the policy configuration of the middleware chain.
type Pipeline struct {
	// Denylist is the set of peer IP addresses rejected with 403 before the
	// inner service runs.
	// Env: PIPELINE_DENYLIST (comma-separated)
	Denylist []string `env:"DENYLIST" envSeparator:","`

	// ExemptPaths are the exact-match paths the auth middleware passes
	// through without token verification.
	// Env: PIPELINE_EXEMPT_PATHS (comma-separated)
	ExemptPaths []string `env:"EXEMPT_PATHS" envSeparator:","`

	// RPS is the sustained request rate admitted by the rate-limit layer.
	// Env: PIPELINE_RPS
	RPS float64 `env:"RPS"`

	// Burst is the rate limiter's bucket size.
	// Env: PIPELINE_BURST
	Burst int `env:"BURST"`
}

// GetStructuredConfig loads, merges, and validates the service configuration
// from all available sources in the following priority order (first source
// wins for any field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig is the final merge source: every field a deployment may
// leave unset gets a sensible development value. Boolean fields default to
// false by the zero value, except console output, which defaults to on.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: 15 * 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:3000",
			RequestTimeout: 30 * time.Second,
		},
		Log: Log{
			Console: true,
			Dir:     "logs",
		},
		AccessLog: AccessLog{
			Console: true,
			Dir:     "logs",
			Tag:     "[GATE]",
		},
		Pipeline: Pipeline{
			ExemptPaths: []string{"/login"},
			RPS:         50,
			Burst:       100,
		},
	}
}
