// Command noodle-timer is a terminal countdown timer.
//
// It shows the remaining time as hours, minutes, seconds and centiseconds,
// refreshed every few milliseconds, and rings an alarm when it reaches zero.
//
// Usage:
//
//	noodle-timer [flags]
//
// Flags:
//
//	-config string           Configuration file path (YAML)
//	-duration string         Countdown duration: milliseconds or Go duration (default "3m")
//	-interval duration       Tick interval (default 10ms)
//	-labels string           Display labels: en, ja (default "en")
//	-render-interval dur     Display refresh interval (default 100ms)
//	-log-level string        Log level: debug, info, warn, error (default "info")
//	-event-log string        Write timer events to this CBOR file
//	-interactive             Interactive shell with start/pause/reset commands (default true)
//	-bell                    Ring the terminal bell on alarm (default true)
//	-write-config string     Write the effective configuration to a file and exit
//	-version                 Print version and exit
//
// Examples:
//
//	# Interactive 25 minute timer
//	noodle-timer -duration 25m
//
//	# Stream a 90 second countdown and exit when it is done
//	noodle-timer -interactive=false -duration 90000
//
//	# Japanese display with an event trace
//	noodle-timer -labels ja -event-log timer.nlog
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/noodle-timer/noodle-go/cmd/noodle-timer/interactive"
	"github.com/noodle-timer/noodle-go/pkg/config"
	"github.com/noodle-timer/noodle-go/pkg/countdown"
	"github.com/noodle-timer/noodle-go/pkg/log"
)

// Version is the noodle-timer release.
const Version = "1.0.0"

// Flags holds the command line flags.
type Flags struct {
	ConfigFile     string
	Duration       string
	Interval       time.Duration
	Labels         string
	RenderInterval time.Duration
	LogLevel       string
	EventLog       string
	Interactive    bool
	Bell           bool
	WriteConfig    string
	ShowVersion    bool
}

var flags Flags

func init() {
	def := config.Default()

	flag.StringVar(&flags.ConfigFile, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&flags.Duration, "duration", def.Timer.Duration, "Countdown duration: milliseconds or Go duration")
	flag.DurationVar(&flags.Interval, "interval", def.Timer.Interval, "Tick interval")
	flag.StringVar(&flags.Labels, "labels", def.Timer.Labels, "Display labels: en, ja")
	flag.DurationVar(&flags.RenderInterval, "render-interval", def.Display.RenderInterval, "Display refresh interval")
	flag.StringVar(&flags.LogLevel, "log-level", def.Logging.Level, "Log level: debug, info, warn, error")
	flag.StringVar(&flags.EventLog, "event-log", def.Logging.EventLog, "Write timer events to this CBOR file")
	flag.BoolVar(&flags.Interactive, "interactive", true, "Interactive shell with start/pause/reset commands")
	flag.BoolVar(&flags.Bell, "bell", def.Alarm.Bell, "Ring the terminal bell on alarm")
	flag.StringVar(&flags.WriteConfig, "write-config", "", "Write the effective configuration to a file and exit")
	flag.BoolVar(&flags.ShowVersion, "version", false, "Print version and exit")
}

func main() {
	flag.Parse()

	if flags.ShowVersion {
		fmt.Printf("noodle-timer %s\n", Version)
		return
	}

	cfg, err := loadConfig(flags, setFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.WriteConfig != "" {
		if err := cfg.Save(flags.WriteConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration written to %s\n", flags.WriteConfig)
		return
	}

	if err := run(cfg, flags.Interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// loadConfig reads the configuration file (if any) and applies the flags
// that were explicitly set on top of it.
func loadConfig(f Flags, set map[string]bool) (*config.Config, error) {
	cfg := config.Default()
	if f.ConfigFile != "" {
		loaded, err := config.Load(f.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if set["duration"] {
		cfg.Timer.Duration = f.Duration
	}
	if set["interval"] {
		cfg.Timer.Interval = f.Interval
	}
	if set["labels"] {
		cfg.Timer.Labels = f.Labels
	}
	if set["render-interval"] {
		cfg.Display.RenderInterval = f.RenderInterval
	}
	if set["log-level"] {
		cfg.Logging.Level = f.LogLevel
	}
	if set["event-log"] {
		cfg.Logging.EventLog = f.EventLog
	}
	if set["bell"] {
		cfg.Alarm.Bell = f.Bell
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, interactiveMode bool) error {
	duration, err := cfg.TimerDuration()
	if err != nil {
		return err
	}
	labels, err := cfg.TimerLabels()
	if err != nil {
		return err
	}

	// Interactive mode routes log output through readline so it does not
	// clobber the prompt; the shell is created before the logger for that.
	var shell *interactive.Shell
	var logOut io.Writer = os.Stderr
	if interactiveMode {
		shell, err = interactive.New(interactive.Config{
			Duration:       duration,
			RenderInterval: cfg.Display.RenderInterval,
			Bell:           cfg.Alarm.Bell,
			AlarmMessage:   cfg.Alarm.Message,
		})
		if err != nil {
			return err
		}
		logOut = shell.Stderr()
	}

	slogger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(slogger)

	eventLogger, closeLog, err := setupEventLog(slogger, cfg.Logging.EventLog)
	if err != nil {
		return err
	}
	defer closeLog()

	timer, err := countdown.New(countdown.Options{
		Interval: cfg.Timer.Interval,
		Labels:   labels,
		Logger:   eventLogger,
		Slog:     slogger,
	})
	if err != nil {
		return err
	}
	defer timer.Stop()

	slogger.Debug("timer created", "timer_id", timer.ID(), "duration", duration, "interval", timer.Interval())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if shell != nil {
		shell.Attach(timer, eventLogger)
		shell.Run(ctx, cancel)
		return nil
	}

	return runStream(ctx, timer, streamConfig{
		Duration:       duration,
		RenderInterval: cfg.Display.RenderInterval,
		Bell:           cfg.Alarm.Bell,
		AlarmMessage:   cfg.Alarm.Message,
	}, os.Stdout)
}

// setupEventLog builds the event logger: slog always, plus a CBOR file
// when path is set. The returned func closes the file.
func setupEventLog(slogger *slog.Logger, path string) (log.Logger, func(), error) {
	console := log.NewSlogAdapter(slogger)
	if path == "" {
		return console, func() {}, nil
	}

	file, err := log.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open event log: %w", err)
	}
	return log.NewMultiLogger(console, file), func() { _ = file.Close() }, nil
}
