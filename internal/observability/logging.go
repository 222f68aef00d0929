package observability

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the process-wide logrus logger and returns an entry
// tagged with the service name.
func SetupLogger(service, level string) *logrus.Entry {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		logger.WithField("level", level).Warn("unknown log level, using info")
	}
	logger.SetLevel(lvl)

	return logger.WithField("service", service)
}
