package logger

import (
	"github.com/gruntwork-io/go-commons/logging"
	"github.com/sirupsen/logrus"
)

// GetProjectLogger returns the logger shared by all muse packages.
func GetProjectLogger() *logrus.Entry {
	logger := logging.GetLogger("")
	return logger.WithField("name", "muse")
}
