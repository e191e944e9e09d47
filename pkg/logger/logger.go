package logger

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger. Debug mode keeps the
// readable text output; anything else logs JSON for collection.
func Setup(debug bool) {
	log.SetOutput(os.Stdout)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		return
	}
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.JSONFormatter{})
}
