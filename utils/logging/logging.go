package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

var (
	// Debug switches the level from info to debug.
	Debug bool
	// JSON switches the text formatter for the JSON one.
	JSON bool
)

func Configure(out io.Writer) {
	log.SetOutput(out)
	if JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	}
	if Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func ForCommand(name string) *log.Entry {
	return log.WithFields(log.Fields{"command": name})
}
