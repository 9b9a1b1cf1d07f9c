package logging

import (
	"maps"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// WithFields attaches fields when logger implements interfaces.FieldsLogger
// and returns logger unchanged otherwise. The map is copied.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	copied := make(map[string]any, len(fields))
	maps.Copy(copied, fields)
	return fieldsLogger.WithFields(copied)
}

// EnsureLogger never returns nil.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return NoOp()
	}
	return logger
}
