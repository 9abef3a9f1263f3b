package prayer

import (
	"time"

	"github.com/systemconf/iftar-cli/internal/api"
)

// ActivePrayer returns the name of the prayer currently in effect: the
// chronologically latest MainPrayers entry whose time has already arrived on
// now's calendar date.
//
// When timings is nil it returns "" (unknown, not an error). When no prayer
// has arrived yet (now is before Imsak), it returns the first MainPrayers
// entry: the whole pre-Imsak window is attributed to the upcoming Imsak
// rather than to yesterday's Isha.
func ActivePrayer(timings *api.Timings, now time.Time) string {
	if timings == nil {
		return ""
	}

	for i := len(MainPrayers) - 1; i >= 0; i-- {
		name := MainPrayers[i]
		raw, _ := TimeFor(*timings, name)

		instant, err := At(raw, now)
		if err != nil {
			// Unparsable entries are skipped, matching the fail-soft
			// normalization contract.
			continue
		}

		if !instant.After(now) {
			return name
		}
	}

	return MainPrayers[0]
}
