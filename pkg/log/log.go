// Package log provides [slog.Handler] creation for the CLI.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/graphite-design/themegen/pkg/scsserrors"
)

const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// CreateHandler creates a [slog.Handler] writing to w, using the given level
// and format strings. Supported formats are text, logfmt, and json.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := charmlog.ParseLevel(parseLevelString(logLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", scsserrors.ErrInvalidFormat, err)
	}

	var formatter charmlog.Formatter

	switch strings.ToLower(logFormat) {
	case FormatText, "":
		formatter = charmlog.TextFormatter
	case FormatLogfmt:
		formatter = charmlog.LogfmtFormatter
	case FormatJSON:
		formatter = charmlog.JSONFormatter
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", scsserrors.ErrInvalidFormat, logFormat)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
	}), nil
}

func parseLevelString(level string) string {
	switch strings.ToLower(level) {
	case "panic", "fatal":
		return "error"
	case "warning":
		return "warn"
	case "trace":
		return "debug"
	case "":
		return "info"
	}

	return strings.ToLower(level)
}
