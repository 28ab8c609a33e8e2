package ros

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLogger returns an instance of the default logger
func DefaultLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

// NewLogger returns a logger writing to out at the named level.
// An empty level means info.
func NewLogger(level string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
	})
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)
	return logger, nil
}
