// Package prayer implements the countdown and scheduling core: time-string
// normalization, seconds-until-target arithmetic with day rollover, and
// active-prayer resolution over a day's timings.
//
// All functions are pure. The reference instant is always passed in
// explicitly so callers can pin it in tests; production callers pass
// time.Now(). Times are interpreted in the instant's location; there is no
// cross-timezone conversion.
package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/systemconf/iftar-cli/internal/api"
)

// AllPrayerNames lists every prayer/event the API reports, in chronological order.
var AllPrayerNames = []string{
	"Imsak", "Fajr", "Sunrise", "Dhuhr", "Asr", "Sunset", "Maghrib", "Isha", "Midnight",
}

// MainPrayers is the canonical daily ordering used for active-prayer
// resolution and for list rendering. A design constant, not derived from data.
var MainPrayers = []string{
	"Imsak", "Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha",
}

// NotifyPrayers are the five daily prayers eligible for per-prayer reminders.
var NotifyPrayers = []string{
	"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha",
}

// TimeFor returns the raw time string for the named prayer.
// The second return value is false for unknown names.
func TimeFor(t api.Timings, name string) (string, bool) {
	switch name {
	case "Imsak":
		return t.Imsak, true
	case "Fajr":
		return t.Fajr, true
	case "Sunrise":
		return t.Sunrise, true
	case "Dhuhr":
		return t.Dhuhr, true
	case "Asr":
		return t.Asr, true
	case "Sunset":
		return t.Sunset, true
	case "Maghrib":
		return t.Maghrib, true
	case "Isha":
		return t.Isha, true
	case "Midnight":
		return t.Midnight, true
	default:
		return "", false
	}
}

// IsValidName reports whether name is a known prayer/event name.
func IsValidName(name string) bool {
	_, ok := TimeFor(api.Timings{}, name)
	return ok
}

// parseClock parses a canonical "H:mm" or "HH:mm" string into hour and minute,
// validating 24-hour clock ranges.
func parseClock(s string) (hour, min int, err error) {
	hs, ms, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, fmt.Errorf("invalid time format: %q", s)
	}

	hour, err = strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	min, err = strconv.Atoi(ms)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", s)
	}

	return hour, min, nil
}

// At constructs the instant for a raw prayer-time string on now's calendar
// date, at second zero, in now's location.
func At(raw string, now time.Time) (time.Time, error) {
	h, m, err := parseClock(Normalize(raw))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location()), nil
}
