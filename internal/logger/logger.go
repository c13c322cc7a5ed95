package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus logger from a level and format name. Output goes to
// stderr so stdout stays clean for result tables.
func New(level, format string) (*logrus.Logger, error) {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	log.SetOutput(os.Stderr)
	return log, nil
}
