// Package logger is the process-wide structured logger.
//
// Calls take a message followed by key/value pairs:
//
//	logger.Info("profile updated", "user_id", id, "action", action)
//
// A lone error in key position is logged under the "error" field.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = newLogger(os.Stderr, "development", "info")
}

// Init configures the logger for the given environment. Production writes JSON,
// every other environment writes human-readable console lines.
func Init(environment string) {
	InitWithOutput(os.Stderr, environment, os.Getenv("LOG_LEVEL"))
}

func InitWithOutput(w io.Writer, environment, level string) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w, environment, level)
}

func newLogger(w io.Writer, environment, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if !strings.EqualFold(environment, "production") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func Debug(msg string, args ...any) {
	emit(current().Debug(), msg, args)
}

func Info(msg string, args ...any) {
	emit(current().Info(), msg, args)
}

func Warn(msg string, args ...any) {
	emit(current().Warn(), msg, args)
}

func Error(msg string, args ...any) {
	emit(current().Error(), msg, args)
}

// Fatal logs and exits the process with status 1.
func Fatal(msg string, args ...any) {
	emit(current().WithLevel(zerolog.FatalLevel), msg, args)
	os.Exit(1)
}

func emit(ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}

	for i := 0; i < len(args); i++ {
		switch k := args[i].(type) {
		case error:
			ev = ev.Err(k)
		case string:
			if i+1 >= len(args) {
				ev = ev.Str("detail", k)
				continue
			}
			if err, ok := args[i+1].(error); ok {
				ev = ev.AnErr(k, err)
			} else {
				ev = ev.Interface(k, args[i+1])
			}
			i++
		default:
			ev = ev.Str("detail", fmt.Sprint(k))
		}
	}

	ev.Msg(msg)
}
