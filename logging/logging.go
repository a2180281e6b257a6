package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// OperationKey is the attribute key that carries the name of the operation a diagnostic belongs to.
const OperationKey = "operation"

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
	// Format selects the handler: "json" (default) or "text".
	Format string
}

// NewLogger creates a new slog.Logger writing to w.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}

	return slog.New(handler)
}

// Warn emits a warning diagnostic tagged with the operation name.
// A nil logger falls back to slog.Default.
func Warn(logger *slog.Logger, operation, detail string, attrs ...slog.Attr) {
	if logger == nil {
		logger = slog.Default()
	}

	all := make([]slog.Attr, 0, len(attrs)+1)
	all = append(all, slog.String(OperationKey, operation))
	all = append(all, attrs...)

	logger.LogAttrs(context.Background(), slog.LevelWarn, detail, all...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
