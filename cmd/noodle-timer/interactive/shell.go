// Package interactive provides the interactive command-line interface
// for noodle-timer.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/noodle-timer/noodle-go/pkg/countdown"
	"github.com/noodle-timer/noodle-go/pkg/log"
)

// Config configures the shell.
type Config struct {
	// Duration is the value restored by reset. The set command replaces it.
	Duration time.Duration

	// RenderInterval is how often the prompt is redrawn.
	RenderInterval time.Duration

	Bell         bool
	AlarmMessage string
}

// Shell handles interactive mode for noodle-timer.
type Shell struct {
	cfg    Config
	timer  *countdown.Timer
	logger log.Logger
	rl     *readline.Instance
	out    io.Writer
}

// New creates a new interactive shell. Attach a timer before Run.
func New(cfg Config) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{
		cfg:    cfg,
		logger: log.NoopLogger{},
		rl:     rl,
		out:    rl.Stdout(),
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Attach connects the shell to a timer and sets the timer to the
// configured duration. Rejected input is reported to logger.
func (s *Shell) Attach(timer *countdown.Timer, logger log.Logger) {
	s.timer = timer
	if logger != nil {
		s.logger = logger
	}
	timer.OnAlarm(s.alarm)
	timer.SetTimer(s.cfg.Duration)
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	renderCtx, stopRender := context.WithCancel(ctx)
	defer stopRender()
	go s.render(renderCtx)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if s.execute(line) {
			cancel()
			return
		}
	}
}

// render redraws the prompt with the current display until ctx is done.
func (s *Shell) render(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.RenderInterval)
	defer ticker.Stop()

	last := ""
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			prompt := s.prompt()
			if prompt == last {
				continue
			}
			last = prompt
			s.rl.SetPrompt(prompt)
			s.rl.Refresh()
		}
	}
}

func (s *Shell) prompt() string {
	return fmt.Sprintf("[%s] > ", s.timer.DisplayString())
}

// execute runs one command line. It returns true when the shell should exit.
func (s *Shell) execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "start", "s":
		s.timer.Start()

	case "pause", "stop", "p":
		s.timer.Stop()

	case "reset", "r":
		s.timer.Reset(s.cfg.Duration)

	case "set":
		s.cmdSet(args)

	case "status", "st":
		s.cmdStatus()

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	return false
}

func (s *Shell) cmdSet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: set <milliseconds|duration>")
		return
	}

	d, err := countdown.ParseDuration(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		s.logger.Log(log.Event{
			Timestamp: time.Now(),
			TimerID:   s.timer.ID(),
			Category:  log.CategoryError,
			Remaining: s.timer.Remaining(),
			Error: &log.ErrorEventData{
				Message: err.Error(),
				Context: "set " + args[0],
			},
		})
		return
	}

	s.cfg.Duration = d
	s.timer.SetTimer(d)
}

func (s *Shell) cmdStatus() {
	snap := s.timer.Snapshot()
	fmt.Fprintf(s.out, "Timer:     %s\n", s.timer.ID())
	fmt.Fprintf(s.out, "State:     %s\n", snap.State)
	fmt.Fprintf(s.out, "Remaining: %v\n", snap.Remaining.Truncate(time.Millisecond))
	fmt.Fprintf(s.out, "Display:   %s\n", snap.Display)
	fmt.Fprintf(s.out, "Reset to:  %v\n", s.cfg.Duration)
}

func (s *Shell) alarm() {
	if s.cfg.Bell {
		fmt.Fprint(s.out, "\a")
	}
	fmt.Fprintln(s.out, s.cfg.AlarmMessage)
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
noodle-timer commands:
  start, s            - Start the countdown
  pause, stop, p      - Pause the countdown
  reset, r            - Stop and restore the configured duration
  set <value>         - Set remaining time (milliseconds or e.g. 1m30s)
  status, st          - Show timer status
  help, ?             - Show this help
  quit, exit, q       - Exit`)
}
