package interactive

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noodle-timer/noodle-go/pkg/countdown"
	"github.com/noodle-timer/noodle-go/pkg/log"
)

type recordingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recordingLogger) Log(event log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingLogger) errors() []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.Event
	for _, e := range r.events {
		if e.Category == log.CategoryError {
			out = append(out, e)
		}
	}
	return out
}

// newTestShell builds a shell without a terminal.
func newTestShell(t *testing.T, cfg Config) (*Shell, *bytes.Buffer, *recordingLogger) {
	t.Helper()

	timer, err := countdown.New(countdown.Options{ID: "shell-timer", Interval: time.Hour})
	require.NoError(t, err)
	t.Cleanup(timer.Stop)

	var buf bytes.Buffer
	rec := &recordingLogger{}
	s := &Shell{cfg: cfg, logger: log.NoopLogger{}, out: &buf}
	s.Attach(timer, rec)
	return s, &buf, rec
}

func TestAttachSetsDuration(t *testing.T) {
	s, _, _ := newTestShell(t, Config{Duration: 90 * time.Second})

	assert.Equal(t, 90*time.Second, s.timer.Remaining())
	assert.Equal(t, countdown.StateStopped, s.timer.State())
	assert.Equal(t, "[0h 1m 30s 00 elapsed] > ", s.prompt())
}

func TestStartPauseCommands(t *testing.T) {
	s, _, _ := newTestShell(t, Config{Duration: time.Minute})

	assert.False(t, s.execute("start"))
	assert.True(t, s.timer.IsRunning())

	assert.False(t, s.execute("s"))
	assert.True(t, s.timer.IsRunning())

	assert.False(t, s.execute("pause"))
	assert.False(t, s.timer.IsRunning())

	s.execute("S")
	s.execute("p")
	assert.False(t, s.timer.IsRunning())
}

func TestSetAndReset(t *testing.T) {
	s, _, _ := newTestShell(t, Config{Duration: time.Minute})

	s.execute("set 5000")
	assert.Equal(t, 5*time.Second, s.timer.Remaining())

	s.execute("start")
	s.timer.SetTimer(time.Second)
	s.execute("reset")

	assert.False(t, s.timer.IsRunning())
	assert.Equal(t, 5*time.Second, s.timer.Remaining(), "reset restores the last set value")
}

func TestSetRejectsInvalidInput(t *testing.T) {
	s, buf, rec := newTestShell(t, Config{Duration: time.Minute})

	s.execute("set abc")

	assert.Equal(t, time.Minute, s.timer.Remaining())
	assert.Contains(t, buf.String(), "Error:")

	errs := rec.errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "shell-timer", errs[0].TimerID)
	assert.Equal(t, "set abc", errs[0].Error.Context)
}

func TestSetUsage(t *testing.T) {
	s, buf, _ := newTestShell(t, Config{Duration: time.Minute})

	s.execute("set")

	assert.Contains(t, buf.String(), "Usage: set")
}

func TestStatus(t *testing.T) {
	s, buf, _ := newTestShell(t, Config{Duration: 1500 * time.Millisecond})

	s.execute("status")

	out := buf.String()
	assert.Contains(t, out, "shell-timer")
	assert.Contains(t, out, "STOPPED")
	assert.Contains(t, out, "0h 0m 1s 50 elapsed")
}

func TestQuitAndUnknown(t *testing.T) {
	s, buf, _ := newTestShell(t, Config{})

	assert.False(t, s.execute(""))
	assert.False(t, s.execute("bogus"))
	assert.Contains(t, buf.String(), "Unknown command: bogus")

	for _, cmd := range []string{"quit", "exit", "q"} {
		assert.True(t, s.execute(cmd), cmd)
	}
}

func TestHelp(t *testing.T) {
	s, buf, _ := newTestShell(t, Config{})

	s.execute("help")

	for _, cmd := range []string{"start", "pause", "reset", "set", "status", "quit"} {
		assert.True(t, strings.Contains(buf.String(), cmd), "help mentions %s", cmd)
	}
}

func TestAlarmOutput(t *testing.T) {
	s, buf, _ := newTestShell(t, Config{Bell: true, AlarmMessage: "Time is up!"})

	s.alarm()

	assert.Equal(t, "\aTime is up!\n", buf.String())
}
