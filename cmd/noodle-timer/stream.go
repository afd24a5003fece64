package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/noodle-timer/noodle-go/pkg/countdown"
)

// streamConfig configures the non-interactive display.
type streamConfig struct {
	Duration       time.Duration
	RenderInterval time.Duration
	Bell           bool
	AlarmMessage   string
}

// runStream starts the countdown and rewrites a single display line every
// render interval until the alarm fires or ctx is cancelled.
func runStream(ctx context.Context, timer *countdown.Timer, cfg streamConfig, out io.Writer) error {
	alarmed := make(chan struct{})
	timer.OnAlarm(func() { close(alarmed) })

	timer.SetAndStart(cfg.Duration)

	ticker := time.NewTicker(cfg.RenderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			fmt.Fprintf(out, "\r%s\n", timer.DisplayString())
			return nil
		case <-alarmed:
			fmt.Fprintf(out, "\r%s\n", timer.DisplayString())
			if cfg.Bell {
				fmt.Fprint(out, "\a")
			}
			fmt.Fprintln(out, cfg.AlarmMessage)
			return nil
		case <-ticker.C:
			fmt.Fprintf(out, "\r%s", timer.DisplayString())
		}
	}
}
