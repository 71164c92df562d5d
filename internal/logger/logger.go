// Package logger provides the repository's leveled logging facade.
//
// The API is deliberately small — Errorf/Infof/Debugf/Tracef behind a
// single verbosity knob — so engine code never carries logger plumbing.
// Output goes through zerolog's console writer on stderr, keeping logs
// separate from the structured results written to stdout or report files.
//
// Verbosity levels (in increasing order):
//
//	Error < Info < Debug < Trace
//
// Example usage:
//
//	logger.SetVerbosity(2) // Debug
//	logger.Infof("starting run")
//	logger.Debugf("spot=%f vol=%f", spot, vol)
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

const (
	Error = iota // Error logs only critical failures.
	Info         // Info logs high-level run progress.
	Debug        // Debug logs detailed diagnostic information.
	Trace        // Trace logs per-step execution details.
)

var log = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
}).With().Timestamp().Logger()

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetVerbosity maps a config verbosity (0=errors .. 3=trace) onto the
// global log level. Typically called once after parsing flags or config.
func SetVerbosity(v int) {
	switch {
	case v <= Error:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case v == Info:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case v == Debug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
}

// Errorf logs a failure that requires attention.
func Errorf(format string, args ...any) { log.Error().Msgf(format, args...) }

// Infof logs a major lifecycle event.
func Infof(format string, args ...any) { log.Info().Msgf(format, args...) }

// Debugf logs diagnostic output useful during development.
func Debugf(format string, args ...any) { log.Debug().Msgf(format, args...) }

// Tracef logs very detailed execution traces. Use sparingly, the hedging
// loop emits one line per step at this level.
func Tracef(format string, args ...any) { log.Trace().Msgf(format, args...) }
