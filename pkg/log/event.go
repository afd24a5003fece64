package log

import (
	"strings"
	"time"
)

// Event represents a timer log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// TimerID identifies the timer instance (UUID).
	TimerID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Remaining is the remaining time after the event was applied.
	Remaining time.Duration `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Command     *CommandEvent     `cbor:"5,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"6,keyasint,omitempty"`
	Alarm       *AlarmEvent       `cbor:"7,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"8,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCommand indicates a command issued to the timer.
	CategoryCommand Category = 0
	// CategoryState indicates a run state transition.
	CategoryState Category = 1
	// CategoryAlarm indicates the countdown reached zero.
	CategoryAlarm Category = 2
	// CategoryError indicates rejected input or a front end failure.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryState:
		return "STATE"
	case CategoryAlarm:
		return "ALARM"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a case-insensitive category name.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(s) {
	case "command":
		return CategoryCommand, true
	case "state":
		return CategoryState, true
	case "alarm":
		return CategoryAlarm, true
	case "error":
		return CategoryError, true
	default:
		return 0, false
	}
}

// CommandEvent captures a command issued to the timer.
type CommandEvent struct {
	// Type of command.
	Type CommandType `cbor:"1,keyasint"`

	// Value is the duration argument of Set and Reset.
	Value time.Duration `cbor:"2,keyasint,omitempty"`

	// Ignored is set when the command had no effect, e.g. Start while running.
	Ignored bool `cbor:"3,keyasint,omitempty"`
}

// CommandType identifies a timer command.
type CommandType uint8

const (
	// CommandSet sets the remaining time.
	CommandSet CommandType = 0
	// CommandStart starts the countdown.
	CommandStart CommandType = 1
	// CommandStop pauses the countdown.
	CommandStop CommandType = 2
	// CommandReset stops the countdown and sets the remaining time.
	CommandReset CommandType = 3
)

// String returns the command name.
func (c CommandType) String() string {
	switch c {
	case CommandSet:
		return "SET"
	case CommandStart:
		return "START"
	case CommandStop:
		return "STOP"
	case CommandReset:
		return "RESET"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a run state transition.
type StateChangeEvent struct {
	// OldState is the previous state.
	OldState string `cbor:"1,keyasint"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// AlarmEvent captures the countdown reaching zero.
type AlarmEvent struct {
	// Overrun is how far below zero the last tick drove the counter
	// before it was clamped.
	Overrun time.Duration `cbor:"1,keyasint"`
}

// ErrorEventData captures rejected input and front end failures.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
