package log

// Logger is the interface applications implement to receive timer events.
// Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records a timer event. Implementations must be thread-safe.
	// Log is called from the tick goroutine, so it should not block.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
