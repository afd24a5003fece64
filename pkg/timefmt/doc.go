// Package timefmt converts a millisecond count into countdown display fields.
//
// A Formatter holds four fields, each wrapped modulo its natural period:
//
//   - Hours        [0, 24)
//   - Minutes      [0, 60)
//   - Seconds      [0, 60)
//   - Centiseconds [0, 100)
//
// The fields carry no independent state. Every call to SetFromMilliseconds
// recomputes all four from its input.
//
// # Labels
//
// Rendering uses a Labels value holding the literal unit labels. EnglishLabels
// is the default; JapaneseLabels reproduces the text of the original browser
// widget:
//
//	f := timefmt.New(timefmt.JapaneseLabels)
//	f.SetFromMilliseconds(3723040)
//	f.String() // "1時間 2分 3秒 4"
package timefmt
