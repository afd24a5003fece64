package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes timer events to an slog.Logger.
// Alarms are logged at Info level, everything else at Debug.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("timer_id", event.TimerID),
		slog.String("category", event.Category.String()),
		slog.Duration("remaining", event.Remaining),
	}

	level := slog.LevelDebug

	switch {
	case event.Command != nil:
		attrs = append(attrs, slog.String("command", event.Command.Type.String()))
		if event.Command.Type == CommandSet || event.Command.Type == CommandReset {
			attrs = append(attrs, slog.Duration("value", event.Command.Value))
		}
		if event.Command.Ignored {
			attrs = append(attrs, slog.Bool("ignored", true))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Alarm != nil:
		level = slog.LevelInfo
		attrs = append(attrs, slog.Duration("overrun", event.Alarm.Overrun))
	case event.Error != nil:
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "timer", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
