package logging

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger.
// format is "text" or "json"; level is any logrus level name.
func Setup(out io.Writer, level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	switch format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("setup logging: unknown format %q", format)
	}

	log.SetOutput(out)
	log.SetLevel(lvl)
	return nil
}
