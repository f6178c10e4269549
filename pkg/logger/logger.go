package logger

import (
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.Nop()

// Init configures the process logger. Development gets a human console
// writer, everything else structured JSON.
func Init(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		return
	}

	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func Info(msg string, keysAndValues ...any) {
	withFields(log.Info(), keysAndValues).Msg(msg)
}

func Warn(msg string, keysAndValues ...any) {
	withFields(log.Warn(), keysAndValues).Msg(msg)
}

func Error(msg string, keysAndValues ...any) {
	withFields(log.Error(), keysAndValues).Msg(msg)
}

// Fatal logs and exits the process.
func Fatal(msg string, keysAndValues ...any) {
	withFields(log.Fatal(), keysAndValues).Msg(msg)
}

// withFields attaches key/value pairs. A lone trailing error is
// accepted as a shorthand for ("error", err).
func withFields(e *zerolog.Event, keysAndValues []any) *zerolog.Event {
	if len(keysAndValues)%2 == 1 {
		last := keysAndValues[len(keysAndValues)-1]
		if err, ok := last.(error); ok {
			e = e.Err(err)
		} else {
			e = e.Interface("value", last)
		}
		keysAndValues = keysAndValues[:len(keysAndValues)-1]
	}

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keysAndValues[i+1])
	}

	return e
}
