// Package commands implements the noodle-log CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/noodle-timer/noodle-go/pkg/log"
)

// BuildFilter builds a reader filter from command line values.
// Empty values match everything.
func BuildFilter(category, timerID string) (log.Filter, error) {
	filter := log.Filter{TimerID: timerID}
	if category != "" {
		c, ok := log.ParseCategory(category)
		if !ok {
			return log.Filter{}, fmt.Errorf("invalid category: %s (valid: command, state, alarm, error)", category)
		}
		filter.Category = &c
	}
	return filter, nil
}

// RunView prints every event matching filter in human-readable form.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes one line per event:
// timestamp [timer:id] CATEGORY details (remaining)
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [timer:%s] %-7s %s (remaining %v)\n",
		ts, shortenID(event.TimerID), event.Category, describe(event), event.Remaining)
}

func describe(event log.Event) string {
	switch {
	case event.Command != nil:
		s := event.Command.Type.String()
		if event.Command.Type == log.CommandSet || event.Command.Type == log.CommandReset {
			s += " " + event.Command.Value.String()
		}
		if event.Command.Ignored {
			s += " (ignored)"
		}
		return s
	case event.StateChange != nil:
		s := event.StateChange.OldState + " -> " + event.StateChange.NewState
		if event.StateChange.Reason != "" {
			s += " (" + event.StateChange.Reason + ")"
		}
		return s
	case event.Alarm != nil:
		return "overrun " + event.Alarm.Overrun.String()
	case event.Error != nil:
		if event.Error.Context != "" {
			return event.Error.Message + " [" + event.Error.Context + "]"
		}
		return event.Error.Message
	default:
		return "-"
	}
}

// shortenID returns the first 8 characters of the timer ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
