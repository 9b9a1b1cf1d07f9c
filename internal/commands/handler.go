package commands

import (
	"context"
	"maps"
	"time"

	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// DefaultCommandTimeout bounds a single command execution.
const DefaultCommandTimeout = time.Minute

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// MessageFields extracts log fields from a message.
type MessageFields[T command.Message] func(msg T) map[string]any

// Handler wraps command execution with shared concerns: message validation,
// timeouts, structured logging, telemetry and error categorisation.
type Handler[T command.Message] struct {
	exec          command.CommandFunc[T]
	logger        interfaces.Logger
	timeout       time.Duration
	operation     string
	messageFields MessageFields[T]
	telemetry     Telemetry[T]
	newRunID      func() string
}

// NewHandler creates a handler that satisfies go-command's Commander interface.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:     fn,
		logger:   logging.NoOp(),
		timeout:  DefaultCommandTimeout,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute conforms to command.Commander[T].Execute. Every execution gets a
// run_id that is attached to the logger and the context fields.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	ctx = ensureContext(ctx)
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return wrapContextError(err)
	}

	fields := h.fieldsFor(msg)
	ctx = logging.ContextWithFields(ctx, fields)
	logger := logging.WithFields(h.logger, fields)
	logger.Debug("command.execute.start")

	start := time.Now()
	err := h.exec(ctx, msg)
	if err == nil {
		err = ctx.Err()
		if err != nil {
			err = wrapContextError(err)
		}
	} else if isContextError(err) {
		err = wrapContextError(err)
	} else {
		err = wrapExecuteError(err)
	}

	h.report(ctx, msg, TelemetryInfo{
		Command:   command.GetMessageType(msg),
		Operation: h.operation,
		Fields:    fields,
		Duration:  time.Since(start),
		Error:     err,
		Status:    statusFor(err),
		Logger:    logger,
	})
	return err
}

func (h *Handler[T]) fieldsFor(msg T) map[string]any {
	fields := map[string]any{
		"command": command.GetMessageType(msg),
		"run_id":  h.newRunID(),
	}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	if h.messageFields != nil {
		maps.Copy(fields, h.messageFields(msg))
	}
	return fields
}

func (h *Handler[T]) report(ctx context.Context, msg T, info TelemetryInfo) {
	if h.telemetry != nil {
		h.telemetry(ctx, msg, info)
		return
	}
	switch info.Status {
	case TelemetryStatusSuccess:
		info.Logger.Info("command.execute.success", "duration_ms", info.Duration.Milliseconds())
	default:
		info.Logger.Error("command.execute.failed", "error", info.Error)
	}
}

// WithTimeout overrides the default execution timeout. Zero or negative
// disables it.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.logger = logging.EnsureLogger(logger)
	}
}

// WithOperation sets an operation name emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// WithMessageFields adds message-derived fields to every log entry.
func WithMessageFields[T command.Message](fn MessageFields[T]) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.messageFields = fn
	}
}

// WithTelemetry replaces the default outcome logging with fn.
func WithTelemetry[T command.Message](fn Telemetry[T]) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.telemetry = fn
	}
}

// WithRunIDGenerator overrides how run identifiers are produced.
func WithRunIDGenerator[T command.Message](fn func() string) HandlerOption[T] {
	return func(h *Handler[T]) {
		if fn != nil {
			h.newRunID = fn
		}
	}
}

func (h *Handler[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}

func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
