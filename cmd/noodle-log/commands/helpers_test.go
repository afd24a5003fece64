package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/noodle-timer/noodle-go/pkg/log"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.nlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sessionEvents is a short countdown: set, start, a rejected start, alarm.
func sessionEvents() []log.Event {
	ts := time.Date(2026, 10, 19, 10, 15, 32, 0, time.UTC)
	id := "0a1b2c3d-aaaa-bbbb-cccc-000000000001"
	return []log.Event{
		{Timestamp: ts, TimerID: id, Category: log.CategoryCommand, Remaining: 2 * time.Second,
			Command: &log.CommandEvent{Type: log.CommandSet, Value: 2 * time.Second}},
		{Timestamp: ts, TimerID: id, Category: log.CategoryCommand, Remaining: 2 * time.Second,
			Command: &log.CommandEvent{Type: log.CommandStart}},
		{Timestamp: ts, TimerID: id, Category: log.CategoryState, Remaining: 2 * time.Second,
			StateChange: &log.StateChangeEvent{OldState: "STOPPED", NewState: "RUNNING", Reason: "start"}},
		{Timestamp: ts.Add(time.Second), TimerID: id, Category: log.CategoryCommand, Remaining: time.Second,
			Command: &log.CommandEvent{Type: log.CommandStart, Ignored: true}},
		{Timestamp: ts.Add(2 * time.Second), TimerID: id, Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{OldState: "RUNNING", NewState: "STOPPED", Reason: "alarm"}},
		{Timestamp: ts.Add(2 * time.Second), TimerID: id, Category: log.CategoryAlarm,
			Alarm: &log.AlarmEvent{Overrun: 4 * time.Millisecond}},
		{Timestamp: ts.Add(3 * time.Second), TimerID: id, Category: log.CategoryError,
			Error: &log.ErrorEventData{Message: "invalid countdown duration", Context: "set abc"}},
	}
}
