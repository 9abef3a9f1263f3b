// Package notify schedules one-shot prayer reminders and delivers them to a
// notification surface. Scheduling is pure computation over a day's timings;
// the only side effect is timer registration, and every registered timer is
// returned as a cancelable handle.
package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog/log"
)

// Notifier delivers a single reminder to the user-facing surface.
// Implementations must tolerate being called from timer goroutines.
type Notifier interface {
	Notify(title, body string)
}

// DesktopNotifier delivers reminders through the platform notification
// surface. Delivery failure (no daemon, permission not granted) is logged and
// otherwise silent: scheduling proceeds regardless of whether notifications
// are visible.
type DesktopNotifier struct{}

// Notify sends a desktop notification.
func (DesktopNotifier) Notify(title, body string) {
	if err := beeep.Notify(title, body, ""); err != nil {
		log.Warn().Err(err).Str("title", title).Msg("desktop notification failed")
	}
}

// LogNotifier writes reminders to the structured log instead of the desktop.
// Used by --dry-run and as the fallback delivery surface.
type LogNotifier struct{}

// Notify logs the reminder.
func (LogNotifier) Notify(title, body string) {
	log.Info().Str("title", title).Str("body", body).Msg("reminder")
}
