package notify

import (
	"time"

	"github.com/systemconf/iftar-cli/internal/api"
	"github.com/systemconf/iftar-cli/internal/prayer"
)

// Reminder offsets relative to their anchor prayers.
const (
	iftarWarnOffset = 15 * time.Minute // before Maghrib
	sahurWarnOffset = 30 * time.Minute // before Fajr
	waterOffset     = 45 * time.Minute // before Fajr
)

// Preferences are the user's optional reminder toggles. The iftar and sahur
// reminders themselves are always scheduled; these enable the extras.
type Preferences struct {
	WaterReminder       bool
	PrayerNotifications bool
}

// Handle is a cancelable pending reminder. A handle's timer fires at most
// once; Cancel before the fire time prevents it entirely and is idempotent.
type Handle struct {
	ID    int
	timer *time.Timer
}

// Cancel stops the reminder if it has not fired yet.
func (h *Handle) Cancel() {
	h.timer.Stop()
}

// CancelAll cancels every handle in the slice. Callers must cancel all
// retained handles before scheduling a new snapshot; the scheduler never
// deduplicates or supersedes earlier schedules on its own.
func CancelAll(handles []*Handle) {
	for _, h := range handles {
		h.Cancel()
	}
}

// reminder is one planned notification: an absolute fire instant and its text.
type reminder struct {
	at    time.Time
	title string
	body  string
}

// Scheduler registers one-shot reminder timers against a Notifier.
type Scheduler struct {
	notifier Notifier
	lang     string
	clock    func() time.Time
	nextID   int
}

// NewScheduler creates a scheduler delivering through n, with reminder text
// in the given locale ("tr" or "en").
func NewScheduler(n Notifier, lang string) *Scheduler {
	return &Scheduler{
		notifier: n,
		lang:     lang,
		clock:    time.Now,
	}
}

// ScheduleAll plans and registers every reminder for one day's timings:
//
//   - a warning 15 minutes before Maghrib and a notice at Maghrib (always)
//   - a warning 30 minutes before Fajr and a notice at Fajr (always)
//   - a water reminder 45 minutes before Fajr (iff prefs.WaterReminder)
//   - a notice at each of the five daily prayers (iff prefs.PrayerNotifications)
//
// Reminders whose fire time is not strictly in the future are skipped without
// a handle: nothing is ever fired retroactively. At most 10 handles are
// returned. The caller owns the handles and must cancel them all before
// scheduling a newer snapshot.
func (s *Scheduler) ScheduleAll(timings api.Timings, prefs Preferences) []*Handle {
	now := s.clock()

	var handles []*Handle
	for _, r := range buildPlan(timings, prefs, s.lang, now) {
		delay := r.at.Sub(now)
		if delay <= 0 {
			continue
		}
		handles = append(handles, s.register(r, delay))
	}

	return handles
}

// register arms a one-shot timer for the reminder.
func (s *Scheduler) register(r reminder, delay time.Duration) *Handle {
	s.nextID++
	title, body := r.title, r.body
	return &Handle{
		ID:    s.nextID,
		timer: time.AfterFunc(delay, func() { s.notifier.Notify(title, body) }),
	}
}

// buildPlan computes the reminder tuples for one day, in a stable order:
// iftar group, sahur group, water, then per-prayer notices. Entries anchored
// to an unparsable time string are dropped, matching the fail-soft
// normalization contract.
func buildPlan(timings api.Timings, prefs Preferences, lang string, now time.Time) []reminder {
	var plan []reminder

	add := func(anchor string, offset time.Duration, m message) {
		instant, err := prayer.At(anchor, now)
		if err != nil {
			return
		}
		plan = append(plan, reminder{at: instant.Add(-offset), title: m.title, body: m.body})
	}

	// Iftar group, anchored to Maghrib.
	add(timings.Maghrib, iftarWarnOffset, localized(iftarWarnMsg, lang))
	add(timings.Maghrib, 0, localized(iftarNowMsg, lang))

	// Sahur group, anchored to Fajr.
	add(timings.Fajr, sahurWarnOffset, localized(sahurWarnMsg, lang))
	add(timings.Fajr, 0, localized(sahurEndMsg, lang))

	if prefs.WaterReminder {
		add(timings.Fajr, waterOffset, localized(waterMsg, lang))
	}

	if prefs.PrayerNotifications {
		for _, name := range prayer.NotifyPrayers {
			raw, _ := prayer.TimeFor(timings, name)
			add(raw, 0, prayerMsg(name, lang))
		}
	}

	return plan
}
