package prayer

import (
	"fmt"
	"time"
)

// celebrationWindow is how long the congratulation banner stays up after the
// target time passes.
const celebrationWindow = 30 * time.Minute

// Countdown returns the number of whole seconds from now until the next
// occurrence of target, a raw "HH:mm"-ish time string.
//
// The target is anchored to now's calendar date at second zero. When that
// instant is at or before now, including exact equality, it has already
// occurred, and the countdown rolls to the same time tomorrow. The result is
// therefore always positive.
//
// An error is returned when the normalized string still does not parse as a
// valid 24-hour clock time.
func Countdown(target string, now time.Time) (int, error) {
	candidate, err := At(target, now)
	if err != nil {
		return 0, fmt.Errorf("cannot compute countdown for %q: %w", target, err)
	}

	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}

	return int(candidate.Sub(now) / time.Second), nil
}

// Duration is a countdown split into zero-padded display components.
type Duration struct {
	Hours   string
	Minutes string
	Seconds string
}

// FormatDuration splits a non-negative second count into two-digit hour,
// minute, and second strings. Truncation toward zero, no rounding.
func FormatDuration(totalSeconds int) Duration {
	return Duration{
		Hours:   fmt.Sprintf("%02d", totalSeconds/3600),
		Minutes: fmt.Sprintf("%02d", totalSeconds%3600/60),
		Seconds: fmt.Sprintf("%02d", totalSeconds%60),
	}
}

// Celebrating reports whether now falls inside the half-hour window starting
// at target, the moment of iftar or the end of sahur, when the countdown
// display gives way to a congratulation.
func Celebrating(target string, now time.Time) bool {
	instant, err := At(target, now)
	if err != nil {
		return false
	}

	since := now.Sub(instant)
	return since >= 0 && since < celebrationWindow
}
