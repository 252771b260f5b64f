// Package logging builds the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Options selects the handler and the minimum level.
type Options struct {
	Level  string // debug, info (default), warn or error
	Format string // text or json
	// AddSource adds the caller's file and line to each record.
	AddSource bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level := slog.LevelInfo
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToUpper(opts.Level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}
	ho := &slog.HandlerOptions{Level: level, AddSource: opts.AddSource}

	switch strings.ToLower(opts.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, ho)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, ho)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}
}
