package logger

import (
	"os"
	"slotfinder/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the bootstrap logger used by main before the application
// logger exists.
func NewLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	switch internalConfig.App.Env {
	case "production":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{})
	}
	return log
}
