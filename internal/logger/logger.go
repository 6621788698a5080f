package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup builds the process logger and installs it as zerolog's global one.
//   - level: trace, debug, info, warn, error, fatal, panic (unknown -> info)
//   - format: "pretty" for human-readable dev output, anything else is JSON
//
// Every line carries a service tag so logs from several deployments can be
// told apart when they land in the same sink.
func Setup(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var writer io.Writer = os.Stdout
	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Str("service", "classora").
		Logger()

	log.Logger = l
	return l
}
