package app

import (
	"io"
	"log/slog"
)

// Log output formats accepted by the host.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// newLogger builds the host's logger from its parsed configuration. It does
// not set the global logger; every App owns an isolated instance tagged with
// the server it talks to.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == LogFormatJSON {
		handler = slog.NewJSONHandler(outW, opts)
	} else {
		handler = slog.NewTextHandler(outW, opts)
	}

	return slog.New(handler).With("server", cfg.ServerName)
}
