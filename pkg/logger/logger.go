package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New настраивает JSON-логгер сервиса координации.
// Некорректный уровень не считается ошибкой: логгер стартует на info
// и сообщает о проблеме сам.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
		log.WithField("log_level", logLevel).Warn("Unknown log level, falling back to info")
	}
	log.SetLevel(level)
	return log
}
