package taglog

// Logger is the interface applications implement to receive registry events.
// Pass nil or NoopLogger to disable capture.
type Logger interface {
	// Log records a registry event. The event should be processed quickly
	// or queued; the registry calls Log synchronously.
	Log(event Event)
}

// NoopLogger discards all events. Use when capture is disabled.
// NoopLogger is usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
