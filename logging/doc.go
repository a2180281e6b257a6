// Package logging builds the slog loggers used across the module and emits
// operation-tagged diagnostics.
//
// Loggers write JSON by default; LoggerConfig.Format "text" switches to the
// key=value handler. Warn is the single entry point for anomaly diagnostics:
//
//	logging.Warn(logger, "accessor.Strings", "value is not a sequence", slog.String("kind", "mapping"))
package logging
