package config

import (
	"context"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// InitLogger applies the level and format from s to the shared logger.
func InitLogger(s *Settings) {
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info' instead", s.LogLevel)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
	Logger.SetOutput(os.Stdout)

	switch strings.ToLower(s.LogFormat) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func WithContext(ctx context.Context) logrus.FieldLogger {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return entry.WithField("request_id", reqID)
	}
	return entry
}
