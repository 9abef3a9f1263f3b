package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/systemconf/iftar-cli/internal/api"
)

// FetchFunc supplies the timings snapshot for a calendar date. The daemon
// does not care how: the CLI wires in the cached API client.
type FetchFunc func(date time.Time) (api.Timings, error)

// Daemon keeps a day's reminders scheduled for as long as the process runs.
// At local midnight it fetches the new day's timings, cancels every
// outstanding handle from the previous snapshot, and schedules afresh.
type Daemon struct {
	scheduler *Scheduler
	prefs     Preferences
	fetch     FetchFunc
	cron      *cron.Cron

	mu      sync.Mutex
	handles []*Handle
}

// NewDaemon creates a reminder daemon. Call Start to begin.
func NewDaemon(s *Scheduler, prefs Preferences, fetch FetchFunc) *Daemon {
	return &Daemon{
		scheduler: s,
		prefs:     prefs,
		fetch:     fetch,
		cron:      cron.New(),
	}
}

// Start schedules today's reminders and arms the midnight refresh.
func (d *Daemon) Start() error {
	if err := d.reschedule(); err != nil {
		return fmt.Errorf("initial schedule failed: %w", err)
	}

	// New day, new snapshot.
	if _, err := d.cron.AddFunc("0 0 * * *", func() {
		if err := d.reschedule(); err != nil {
			log.Error().Err(err).Msg("midnight reschedule failed, keeping previous schedule")
		}
	}); err != nil {
		return fmt.Errorf("failed to register midnight refresh: %w", err)
	}

	d.cron.Start()
	log.Info().Msg("reminder daemon started")
	return nil
}

// Stop halts the midnight refresh and cancels every pending reminder.
func (d *Daemon) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()

	d.mu.Lock()
	CancelAll(d.handles)
	d.handles = nil
	d.mu.Unlock()

	log.Info().Msg("reminder daemon stopped")
}

// reschedule replaces the current set of pending reminders with a fresh
// schedule for today.
func (d *Daemon) reschedule() error {
	timings, err := d.fetch(time.Now())
	if err != nil {
		return fmt.Errorf("failed to fetch timings: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	CancelAll(d.handles)
	d.handles = d.scheduler.ScheduleAll(timings, d.prefs)

	log.Info().
		Int("pending", len(d.handles)).
		Bool("water_reminder", d.prefs.WaterReminder).
		Bool("prayer_notifications", d.prefs.PrayerNotifications).
		Msg("reminders scheduled")

	return nil
}

// Pending returns the number of reminders currently scheduled.
func (d *Daemon) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handles)
}
