package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// TelemetryStatus captures the result category for command execution.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo describes a command execution outcome.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	// Logger already carries Fields.
	Logger interfaces.Logger
}

// Telemetry is invoked once after every execution.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry logs command outcomes with logger, falling back to the
// execution logger when logger is nil.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	return func(_ context.Context, _ T, info TelemetryInfo) {
		entry := info.Logger
		if logger != nil {
			entry = logging.WithFields(logger, info.Fields)
		}
		entry = logging.EnsureLogger(entry)

		args := []any{"duration_ms", info.Duration.Milliseconds()}
		switch info.Status {
		case TelemetryStatusSuccess:
			entry.Info("command.execute.success", args...)
		case TelemetryStatusContextError:
			entry.Error("command.execute.context_error", append(args, "error", info.Error)...)
		default:
			entry.Error("command.execute.failed", append(args, "error", info.Error)...)
		}
	}
}

func statusFor(err error) TelemetryStatus {
	switch {
	case err == nil:
		return TelemetryStatusSuccess
	case isContextError(err):
		return TelemetryStatusContextError
	default:
		return TelemetryStatusFailed
	}
}
