package cmd

import (
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger creates the logger for the command. Logs go to a rotating file
// when lc.File is set and to w otherwise. The format is "json" or "console".
// An invalid or empty level means warn.
func NewLogger(w io.Writer, lc LogConfig) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(lc.Level)
	if err != nil || lc.Level == "" {
		lvl = zerolog.WarnLevel
	}

	if lc.File != "" {
		w = &lumberjack.Logger{
			Filename:   lc.File,
			MaxSize:    lc.MaxSizeMB,
			MaxBackups: lc.MaxFiles,
			Compress:   true,
		}
	}

	if lc.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
