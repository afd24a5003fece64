package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.nlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, path string) []Event {
	t.Helper()
	return readFiltered(t, path, Filter{})
}

func readFiltered(t *testing.T, path string, filter Filter) []Event {
	t.Helper()

	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
	return read
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), TimerID: "timer-1", Category: CategoryCommand},
		{Timestamp: time.Now(), TimerID: "timer-2", Category: CategoryState},
		{Timestamp: time.Now(), TimerID: "timer-3", Category: CategoryAlarm},
	}

	read := readAll(t, createTestLogFile(t, events))

	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	if read[0].TimerID != "timer-1" {
		t.Errorf("first event TimerID = %q, want %q", read[0].TimerID, "timer-1")
	}
	if read[2].TimerID != "timer-3" {
		t.Errorf("last event TimerID = %q, want %q", read[2].TimerID, "timer-3")
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.nlog")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.nlog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderFiltersByTimerID(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), TimerID: "a", Category: CategoryCommand},
		{Timestamp: time.Now(), TimerID: "b", Category: CategoryCommand},
		{Timestamp: time.Now(), TimerID: "a", Category: CategoryAlarm},
	}

	read := readFiltered(t, createTestLogFile(t, events), Filter{TimerID: "a"})

	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	for _, e := range read {
		if e.TimerID != "a" {
			t.Errorf("TimerID = %q, want %q", e.TimerID, "a")
		}
	}
}

func TestReaderFiltersByCategory(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), Category: CategoryCommand},
		{Timestamp: time.Now(), Category: CategoryAlarm},
		{Timestamp: time.Now(), Category: CategoryState},
	}

	alarm := CategoryAlarm
	read := readFiltered(t, createTestLogFile(t, events), Filter{Category: &alarm})

	if len(read) != 1 {
		t.Fatalf("got %d events, want 1", len(read))
	}
	if read[0].Category != CategoryAlarm {
		t.Errorf("Category = %v, want ALARM", read[0].Category)
	}
}

func TestReaderFiltersByTimeRange(t *testing.T) {
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base},
		{Timestamp: base.Add(time.Minute)},
		{Timestamp: base.Add(2 * time.Minute)},
	}

	start := base.Add(30 * time.Second)
	end := base.Add(2 * time.Minute)
	read := readFiltered(t, createTestLogFile(t, events), Filter{TimeStart: &start, TimeEnd: &end})

	if len(read) != 1 {
		t.Fatalf("got %d events, want 1", len(read))
	}
	if !read[0].Timestamp.Equal(base.Add(time.Minute)) {
		t.Errorf("Timestamp = %v, want %v", read[0].Timestamp, base.Add(time.Minute))
	}
}
