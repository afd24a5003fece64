package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		TimerID:   "timer-1",
		Category:  CategoryCommand,
	}
	logger.Log(event)

	event.Command = &CommandEvent{Type: CommandStart}
	logger.Log(event)

	event.Command = nil
	event.StateChange = &StateChangeEvent{OldState: "STOPPED", NewState: "RUNNING"}
	logger.Log(event)

	event.StateChange = nil
	event.Alarm = &AlarmEvent{Overrun: 3 * time.Millisecond}
	logger.Log(event)

	event.Alarm = nil
	event.Error = &ErrorEventData{Message: "test error"}
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryCommand, "COMMAND"},
		{CategoryState, "STATE"},
		{CategoryAlarm, "ALARM"},
		{CategoryError, "ERROR"},
		{Category(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range []Category{CategoryCommand, CategoryState, CategoryAlarm, CategoryError} {
		got, ok := ParseCategory(c.String())
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v, true", c.String(), got, ok, c)
		}
	}

	if _, ok := ParseCategory("frame"); ok {
		t.Error("ParseCategory(\"frame\") ok = true, want false")
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CommandSet, "SET"},
		{CommandStart, "START"},
		{CommandStop, "STOP"},
		{CommandReset, "RESET"},
		{CommandType(9), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
