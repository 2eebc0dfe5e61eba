// Package constants defines shared constants and environment variable names
// used throughout the outlet router.
package constants

import "os"

// PathSeparator separates pathname segments. A child route suffix must not start with it.
const PathSeparator = "/"

// DefaultRootID is the identifier of the root mount container when none is configured.
const DefaultRootID = "root"

// LogLevelEnvVar overrides the log level chosen in Init (debug, info, warn, error).
const LogLevelEnvVar = "OUTLET_LOG_LEVEL"

// LogPathEnvVar sets the log file path when Options.LogPath is empty.
const LogPathEnvVar = "OUTLET_LOG_PATH"

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}
