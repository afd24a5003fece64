// Package countdown implements a countdown timer with a periodic display refresh.
//
// A Timer owns the remaining time and a two-state run machine:
//
//	STOPPED --Start--> RUNNING --Stop / reaches zero--> STOPPED
//
// While running, a ticker fires every Interval (10ms by default). Each tick
// subtracts the wall-clock time elapsed since the previous tick from the
// remaining time and refreshes the display fields. When the remaining time
// drops below zero it is clamped to zero, the timer stops and the alarm
// fires exactly once.
//
// # Commands
//
//   - SetTimer sets the remaining time in either state.
//   - Start is a no-op while running; a second ticker is never created.
//   - Stop is a no-op while stopped and always releases the ticker.
//   - Reset stops the timer and sets the remaining time in one step.
//
// # Notifications
//
// Front ends either poll DisplayString or subscribe with OnChange, which
// fires after every display refresh. OnStateChange reports run state
// transitions and OnAlarm replaces the default alarm, a slog warning.
// Callbacks run on the ticker goroutine, outside the timer's lock.
//
// # Input
//
// ParseDuration validates user input before it reaches SetTimer. It accepts a
// non-negative integer number of milliseconds or a Go duration string and
// rejects everything else with ErrInvalidDuration.
package countdown
