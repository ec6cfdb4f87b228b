// Package log provides the zerolog-based logger shared by the rc5 binaries.
// Logs go to stderr through a console writer so that stdout stays clean for
// hex output.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var pkgLogger = newLogger(os.Stderr, zerolog.InfoLevel)

func newLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// SetDebug toggles debug-level output.
func SetDebug(on bool) {
	level := zerolog.InfoLevel
	if on {
		level = zerolog.DebugLevel
	}
	pkgLogger = pkgLogger.Level(level)
}

// SetOutput redirects log output, mainly for tests. A nil writer restores
// stderr.
func SetOutput(out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	pkgLogger = newLogger(out, pkgLogger.GetLevel())
}

func Debug() *zerolog.Event { return pkgLogger.Debug() }
func Info() *zerolog.Event  { return pkgLogger.Info() }
func Warn() *zerolog.Event  { return pkgLogger.Warn() }
func Error() *zerolog.Event { return pkgLogger.Error() }
func Fatal() *zerolog.Event { return pkgLogger.Fatal() }

// Printf sends an info-level event. Arguments are handled in the manner of
// fmt.Printf.
func Printf(format string, v ...any) {
	pkgLogger.Info().Msgf(format, v...)
}

// Fatalf logs at fatal level and exits.
func Fatalf(format string, v ...any) {
	pkgLogger.Fatal().Msgf(format, v...)
}
