package logger

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger used across the service.
func Init(level string) {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("неизвестный уровень логирования, используется info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
