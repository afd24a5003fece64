package countdown

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses user input for SetTimer.
//
// A bare integer is a number of milliseconds ("90000"). Anything else must be
// a Go duration string ("90s", "1m30s"). Negative values, values at or above
// DurationLimit and non-numeric text return ErrInvalidDuration.
func ParseDuration(text string) (time.Duration, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidDuration)
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("%w: %q is negative", ErrInvalidDuration, s)
		}
		if ms >= DurationLimit.Milliseconds() {
			return 0, fmt.Errorf("%w: %q must be below %v", ErrInvalidDuration, s, DurationLimit)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is neither milliseconds nor a duration", ErrInvalidDuration, s)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidDuration, s)
	}
	if d >= DurationLimit {
		return 0, fmt.Errorf("%w: %q must be below %v", ErrInvalidDuration, s, DurationLimit)
	}
	return d, nil
}
