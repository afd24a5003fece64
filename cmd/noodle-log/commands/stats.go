package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/noodle-timer/noodle-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	EventsByCommand  map[log.CommandType]int
	IgnoredCommands  int
	Timers           map[string]*TimerStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// TimerStats holds statistics for a single timer instance.
type TimerStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Alarms    int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		EventsByCommand:  make(map[log.CommandType]int),
		Timers:           make(map[string]*TimerStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		ts, ok := stats.Timers[event.TimerID]
		if !ok {
			ts = &TimerStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Timers[event.TimerID] = ts
		}
		ts.Events++
		if event.Timestamp.After(ts.LastSeen) {
			ts.LastSeen = event.Timestamp
		}

		if event.Command != nil {
			stats.EventsByCommand[event.Command.Type]++
			if event.Command.Ignored {
				stats.IgnoredCommands++
			}
		}
		if event.Alarm != nil {
			ts.Alarms++
		}
		if event.Error != nil {
			stats.Errors++
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== noodle-timer Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryCommand, log.CategoryState, log.CategoryAlarm, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Commands:")
	for _, cmd := range []log.CommandType{log.CommandSet, log.CommandStart, log.CommandStop, log.CommandReset} {
		if count := stats.EventsByCommand[cmd]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cmd.String()+":", count)
		}
	}
	if stats.IgnoredCommands > 0 {
		fmt.Fprintf(w, "  %-12s %d\n", "IGNORED:", stats.IgnoredCommands)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Timers: %d\n", len(stats.Timers))
	if len(stats.Timers) > 0 {
		type timerInfo struct {
			id    string
			stats *TimerStats
		}
		timers := make([]timerInfo, 0, len(stats.Timers))
		for id, ts := range stats.Timers {
			timers = append(timers, timerInfo{id, ts})
		}
		sort.Slice(timers, func(i, j int) bool {
			return timers[i].stats.FirstSeen.Before(timers[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, t := range timers {
			duration := t.stats.LastSeen.Sub(t.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, %d alarms, span %s\n",
				shortenID(t.id), t.stats.Events, t.stats.Alarms, duration)
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
