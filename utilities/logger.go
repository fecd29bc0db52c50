package utilities

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// InitLogger configures the process logger. Level comes from LOG_LEVEL
// (debug, info, warn, error); default is info.
func InitLogger() {
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// LogRequest records one handled HTTP request.
func LogRequest(method, path, remoteAddr string, status int, duration time.Duration) {
	logger.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"remote":   remoteAddr,
		"status":   status,
		"duration": duration.String(),
	}).Info("request")
}

// LogError records an error with its surrounding context.
func LogError(err error, context string) {
	logger.WithError(err).Error(context)
}

// LogDebug records debug details.
func LogDebug(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

// LogInfo records general information.
func LogInfo(format string, v ...interface{}) {
	logger.Infof(format, v...)
}
