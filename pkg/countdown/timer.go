package countdown

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noodle-timer/noodle-go/pkg/log"
	"github.com/noodle-timer/noodle-go/pkg/timefmt"
)

// Timer constants.
const (
	// DefaultInterval is the nominal tick interval.
	DefaultInterval = 10 * time.Millisecond

	// DurationLimit is the exclusive upper bound accepted by ParseDuration.
	// The display wraps hours modulo 24.
	DurationLimit = 24 * time.Hour
)

// Timer errors.
var (
	ErrInvalidDuration = errors.New("invalid countdown duration")
	ErrInvalidInterval = errors.New("invalid tick interval")
)

// State represents the run state of a timer.
type State uint8

const (
	// StateStopped indicates the countdown is paused or finished.
	StateStopped State = iota

	// StateRunning indicates the ticker is active.
	StateRunning
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "STOPPED"
	case StateRunning:
		return "RUNNING"
	default:
		return "UNKNOWN"
	}
}

// Snapshot is a consistent view of the timer after a display refresh.
type Snapshot struct {
	State     State
	Remaining time.Duration
	Fields    timefmt.Fields
	Display   string
}

// Options configures a Timer. The zero value is usable.
type Options struct {
	// ID tags every event. A random UUID is used if empty.
	ID string

	// Clock defaults to SystemClock.
	Clock Clock

	// Interval is the tick interval. Defaults to DefaultInterval.
	Interval time.Duration

	// Labels used for the display. Defaults to timefmt.EnglishLabels.
	Labels timefmt.Labels

	// Logger receives timer events. Defaults to log.NoopLogger.
	Logger log.Logger

	// Slog receives diagnostics, including the default alarm.
	// Defaults to slog.Default().
	Slog *slog.Logger
}

// Timer is a countdown timer. It is safe for concurrent use.
type Timer struct {
	mu sync.Mutex

	id       string
	clock    Clock
	interval time.Duration
	labels   timefmt.Labels
	logger   log.Logger
	slog     *slog.Logger

	// Current state
	state     State
	remaining time.Duration
	lastTick  time.Time
	formatter *timefmt.Formatter

	// Active run; done is closed when the run ends
	ticker Ticker
	done   chan struct{}

	// Callbacks
	onAlarm       func()
	onChange      func(Snapshot)
	onStateChange func(oldState, newState State)
}

// New creates a stopped timer with zero remaining time.
func New(opts Options) (*Timer, error) {
	if opts.Interval < 0 {
		return nil, ErrInvalidInterval
	}

	t := &Timer{
		id:       opts.ID,
		clock:    opts.Clock,
		interval: opts.Interval,
		labels:   opts.Labels,
		logger:   opts.Logger,
		slog:     opts.Slog,
		state:    StateStopped,
	}

	if t.id == "" {
		t.id = uuid.NewString()
	}
	if t.clock == nil {
		t.clock = SystemClock
	}
	if t.interval == 0 {
		t.interval = DefaultInterval
	}
	if t.labels.Name == "" {
		t.labels = timefmt.EnglishLabels
	}
	if t.logger == nil {
		t.logger = log.NoopLogger{}
	}
	if t.slog == nil {
		t.slog = slog.Default()
	}

	t.formatter = timefmt.New(t.labels)
	t.lastTick = t.clock.Now()

	return t, nil
}

// ID returns the timer's instance ID.
func (t *Timer) ID() string {
	return t.id
}

// Interval returns the tick interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// State returns the current run state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// IsRunning returns true if the ticker is active.
func (t *Timer) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == StateRunning
}

// Remaining returns the remaining time as of the last refresh.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Fields returns the display fields as of the last refresh.
func (t *Timer) Fields() timefmt.Fields {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.formatter.Fields()
}

// DisplayString returns the formatted remaining time followed by the
// elapsed label.
func (t *Timer) DisplayString() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.displayLocked()
}

// Snapshot returns a consistent view of the timer.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// SetTimer sets the remaining time and refreshes the display.
// Negative durations are clamped to zero. The run state is unchanged.
func (t *Timer) SetTimer(d time.Duration) {
	if d < 0 {
		d = 0
	}

	t.mu.Lock()
	t.remaining = d
	t.formatter.SetFromMilliseconds(d.Milliseconds())
	snap := t.snapshotLocked()
	changeFn := t.onChange
	t.mu.Unlock()

	t.logCommand(log.CommandSet, d, d, false)

	if changeFn != nil {
		changeFn(snap)
	}
}

// Start starts the countdown. It is a no-op while running.
func (t *Timer) Start() {
	t.mu.Lock()

	if t.state == StateRunning {
		remaining := t.remaining
		t.mu.Unlock()
		t.logCommand(log.CommandStart, 0, remaining, true)
		return
	}

	t.state = StateRunning
	t.lastTick = t.clock.Now()
	t.ticker = t.clock.NewTicker(t.interval)
	t.done = make(chan struct{})
	go t.run(t.ticker, t.done)

	remaining := t.remaining
	stateChangeFn := t.onStateChange

	t.mu.Unlock()

	t.logCommand(log.CommandStart, 0, remaining, false)
	t.logStateChange(StateStopped, StateRunning, remaining, "start")

	if stateChangeFn != nil {
		stateChangeFn(StateStopped, StateRunning)
	}
}

// Stop pauses the countdown. It is a no-op while stopped.
func (t *Timer) Stop() {
	t.mu.Lock()

	if t.state == StateStopped {
		remaining := t.remaining
		t.mu.Unlock()
		t.logCommand(log.CommandStop, 0, remaining, true)
		return
	}

	t.stopLocked()
	remaining := t.remaining
	stateChangeFn := t.onStateChange

	t.mu.Unlock()

	t.logCommand(log.CommandStop, 0, remaining, false)
	t.logStateChange(StateRunning, StateStopped, remaining, "stop")

	if stateChangeFn != nil {
		stateChangeFn(StateRunning, StateStopped)
	}
}

// SetAndStart sets the remaining time and starts the countdown.
func (t *Timer) SetAndStart(d time.Duration) {
	t.SetTimer(d)
	t.Start()
}

// Reset stops the countdown and sets the remaining time in one step.
func (t *Timer) Reset(d time.Duration) {
	if d < 0 {
		d = 0
	}

	t.mu.Lock()

	wasRunning := t.state == StateRunning
	if wasRunning {
		t.stopLocked()
	}
	t.remaining = d
	t.formatter.SetFromMilliseconds(d.Milliseconds())

	snap := t.snapshotLocked()
	changeFn := t.onChange
	stateChangeFn := t.onStateChange

	t.mu.Unlock()

	t.logCommand(log.CommandReset, d, d, false)
	if wasRunning {
		t.logStateChange(StateRunning, StateStopped, d, "reset")
	}

	if changeFn != nil {
		changeFn(snap)
	}
	if wasRunning && stateChangeFn != nil {
		stateChangeFn(StateRunning, StateStopped)
	}
}

// OnAlarm sets the callback fired when the countdown reaches zero.
// A nil callback restores the default slog warning.
func (t *Timer) OnAlarm(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onAlarm = fn
}

// OnChange sets a callback fired after every display refresh.
func (t *Timer) OnChange(fn func(Snapshot)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
}

// OnStateChange sets a callback for run state transitions.
func (t *Timer) OnStateChange(fn func(oldState, newState State)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onStateChange = fn
}

// run forwards ticks until done is closed.
func (t *Timer) run(ticker Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C():
			t.tick(done)
		}
	}
}

// tick applies the time elapsed since the previous tick.
// Ticks from a run that has already ended are ignored.
func (t *Timer) tick(done chan struct{}) {
	t.mu.Lock()

	if t.state != StateRunning || t.done != done {
		t.mu.Unlock()
		return
	}

	now := t.clock.Now()
	t.remaining -= now.Sub(t.lastTick)

	if t.remaining < 0 {
		overrun := -t.remaining
		t.remaining = 0
		t.formatter.SetFromMilliseconds(0)
		t.stopLocked()

		snap := t.snapshotLocked()
		changeFn := t.onChange
		stateChangeFn := t.onStateChange
		alarmFn := t.onAlarm

		t.mu.Unlock()

		t.logStateChange(StateRunning, StateStopped, 0, "alarm")
		t.log(log.Event{
			Category: log.CategoryAlarm,
			Alarm:    &log.AlarmEvent{Overrun: overrun},
		})

		if changeFn != nil {
			changeFn(snap)
		}
		if stateChangeFn != nil {
			stateChangeFn(StateRunning, StateStopped)
		}
		if alarmFn != nil {
			alarmFn()
		} else {
			t.slog.Warn("alarm", "timer_id", t.id, "overrun", overrun)
		}
		return
	}

	t.formatter.SetFromMilliseconds(t.remaining.Milliseconds())
	t.lastTick = now

	snap := t.snapshotLocked()
	changeFn := t.onChange

	t.mu.Unlock()

	if changeFn != nil {
		changeFn(snap)
	}
}

// stopLocked releases the ticker and ends the run goroutine.
func (t *Timer) stopLocked() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
	t.state = StateStopped
}

func (t *Timer) displayLocked() string {
	return t.formatter.String() + t.labels.Elapsed
}

func (t *Timer) snapshotLocked() Snapshot {
	return Snapshot{
		State:     t.state,
		Remaining: t.remaining,
		Fields:    t.formatter.Fields(),
		Display:   t.displayLocked(),
	}
}

func (t *Timer) log(event log.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = t.clock.Now()
	}
	event.TimerID = t.id
	t.logger.Log(event)
}

func (t *Timer) logCommand(cmd log.CommandType, value, remaining time.Duration, ignored bool) {
	t.log(log.Event{
		Category:  log.CategoryCommand,
		Remaining: remaining,
		Command: &log.CommandEvent{
			Type:    cmd,
			Value:   value,
			Ignored: ignored,
		},
	})
}

func (t *Timer) logStateChange(oldState, newState State, remaining time.Duration, reason string) {
	t.log(log.Event{
		Category:  log.CategoryState,
		Remaining: remaining,
		StateChange: &log.StateChangeEvent{
			OldState: oldState.String(),
			NewState: newState.String(),
			Reason:   reason,
		},
	})
}
