// Package logging constructs the logrus logger used across the tool.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log level override via env variable.
const logLevelEnvVar = "AVGSIZE_LOG_LEVEL"

// New returns a logger writing to stderr. The level comes from
// AVGSIZE_LOG_LEVEL when set and valid, otherwise info; debug forces
// the debug level regardless of the env variable.
func New(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	log.SetLevel(resolveLevel(os.Getenv(logLevelEnvVar)))

	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// resolveLevel parses the env variable string, falling back to info when
// it is empty or invalid.
func resolveLevel(raw string) logrus.Level {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return logrus.InfoLevel
	}

	level, err := logrus.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}
