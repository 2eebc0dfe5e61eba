// Package outlet provides a minimal single-page-application router.
//
// A router is built from a flat list of top-level routes, each optionally owning
// one level of child routes, and a root mount container. Every navigation maps an
// exact pathname to a view and picks the container it is mounted into: the root
// for ordinary navigation, or a parent route's own container (its outlet) when the
// parent was pushed with outlet intent.
//
// The router itself lives in the router subpackage. The history and dom
// subpackages provide in-memory collaborators, and manifest loads route trees
// from TOML files.
package outlet

import (
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/outlet/pkg/outlet/constants"
	"github.com/BrandonKowalski/outlet/pkg/outlet/internal"
)

// Options configures logging for the outlet router.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // debug, info, warn or error. Overridden by OUTLET_LOG_LEVEL
}

// Init configures logging. Calling it is optional; without it the router logs
// JSON to stdout at info level.
func Init(options Options) {
	logPath := options.LogPath
	if logPath == "" {
		logPath = os.Getenv(constants.LogPathEnvVar)
	}
	if logPath != "" {
		internal.SetLogPath(logPath)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	} else if level == "" && constants.IsDevMode() {
		level = "debug"
	}
	internal.SetRawLogLevel(level)
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() or the first log line to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogWriter sends console log output to w instead of stdout.
// Call before Init() or the first log line to take effect.
func SetLogWriter(w io.Writer) {
	internal.SetLogWriter(w)
}

// GetLogger returns the router logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the router logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
