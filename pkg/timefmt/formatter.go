package timefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Unit sizes in milliseconds.
const (
	msPerCentisecond = 10
	msPerSecond      = 1000
	msPerMinute      = 60 * msPerSecond
	msPerHour        = 60 * msPerMinute
)

// ErrUnknownLabels is returned by LabelsByName for an unsupported label set.
var ErrUnknownLabels = errors.New("unknown label set")

// Fields holds the wrapped display fields.
type Fields struct {
	Hours        int
	Minutes      int
	Seconds      int
	Centiseconds int
}

// IsZero returns true if every field is zero.
func (f Fields) IsZero() bool {
	return f == Fields{}
}

// Labels holds the literal unit labels used when rendering.
type Labels struct {
	// Name identifies the label set ("en", "ja").
	Name string

	Hours        string
	Minutes      string
	Seconds      string
	Centiseconds string

	// Elapsed is appended verbatim by the countdown display, so it carries
	// its own leading separator where the language needs one.
	Elapsed string

	// PadCentiseconds renders centiseconds as two digits.
	PadCentiseconds bool
}

// Built-in label sets.
var (
	EnglishLabels = Labels{
		Name:            "en",
		Hours:           "h",
		Minutes:         "m",
		Seconds:         "s",
		Elapsed:         " elapsed",
		PadCentiseconds: true,
	}

	JapaneseLabels = Labels{
		Name:    "ja",
		Hours:   "時間",
		Minutes: "分",
		Seconds: "秒",
		Elapsed: "経過",
	}
)

// LabelsByName returns the built-in label set with the given name.
// An empty name selects EnglishLabels.
func LabelsByName(name string) (Labels, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "en":
		return EnglishLabels, nil
	case "ja":
		return JapaneseLabels, nil
	default:
		return Labels{}, fmt.Errorf("%w: %q", ErrUnknownLabels, name)
	}
}

// Formatter converts milliseconds into display fields.
// The zero value renders with EnglishLabels.
type Formatter struct {
	fields Fields
	labels Labels
}

// New creates a Formatter using the given labels.
func New(labels Labels) *Formatter {
	return &Formatter{labels: labels}
}

// FromDuration creates an English Formatter already set to d.
func FromDuration(d time.Duration) *Formatter {
	f := New(EnglishLabels)
	f.SetFromMilliseconds(d.Milliseconds())
	return f
}

// SetFromMilliseconds recomputes all fields from msec.
// Negative input is treated as zero.
func (f *Formatter) SetFromMilliseconds(msec int64) {
	if msec < 0 {
		msec = 0
	}
	f.fields = Fields{
		Centiseconds: int(msec / msPerCentisecond % 100),
		Seconds:      int(msec / msPerSecond % 60),
		Minutes:      int(msec / msPerMinute % 60),
		Hours:        int(msec / msPerHour % 24),
	}
}

// Fields returns the current display fields.
func (f *Formatter) Fields() Fields {
	return f.fields
}

// Labels returns the labels used for rendering.
func (f *Formatter) Labels() Labels {
	if f.labels.Name == "" {
		return EnglishLabels
	}
	return f.labels
}

// String renders hours, minutes, seconds and centiseconds in that order.
func (f *Formatter) String() string {
	l := f.Labels()
	cs := fmt.Sprintf("%d", f.fields.Centiseconds)
	if l.PadCentiseconds {
		cs = fmt.Sprintf("%02d", f.fields.Centiseconds)
	}
	return fmt.Sprintf("%d%s %d%s %d%s %s%s",
		f.fields.Hours, l.Hours,
		f.fields.Minutes, l.Minutes,
		f.fields.Seconds, l.Seconds,
		cs, l.Centiseconds)
}
