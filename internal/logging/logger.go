// Package logging builds the process logger from configuration.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/teurajarvi/listservice/internal/config"
)

// levelAliases maps level names logrus does not know to the closest logrus level.
var levelAliases = map[string]logrus.Level{
	"critical": logrus.FatalLevel,
	"notset":   logrus.TraceLevel,
}

// ParseLevel converts a textual level name into a logrus level.
// The second return value is false when the name was not recognised and info was used.
func ParseLevel(name string) (logrus.Level, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return logrus.InfoLevel, true
	}
	if level, ok := levelAliases[name]; ok {
		return level, true
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel, false
	}
	return level, true
}

// New creates a logger writing to stderr
func New(cfg *config.Config) *logrus.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput creates a logger writing to out
func NewWithOutput(cfg *config.Config, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if cfg.Logging.Format == config.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, ok := ParseLevel(cfg.Logging.Level)
	logger.SetLevel(level)
	if !ok {
		logger.WithField("log_level", cfg.Logging.Level).Warn("Unknown log level, using info")
	}

	return logger
}

// ForService returns an entry tagged with the service name and deployment mode
func ForService(logger *logrus.Logger, cfg *config.Config) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"service":     cfg.ServiceName,
		"environment": cfg.Environment,
		"mode":        config.GetDeploymentMode(),
	})
}
