package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/systemconf/iftar-cli/internal/api"
	"github.com/systemconf/iftar-cli/internal/cache"
	"github.com/systemconf/iftar-cli/internal/notify"
)

var flagNotifyDryRun bool

func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Run the reminder daemon",
		Long: "Schedule desktop notifications for today's iftar, sahur and prayer times,\n" +
			"then keep running and reschedule every midnight. Stops on Ctrl-C.",
		RunE: runNotify,
	}

	cmd.Flags().BoolVar(&flagNotifyDryRun, "dry-run", false, "Log notifications instead of sending them")

	return cmd
}

func runNotify(cmd *cobra.Command, args []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := effectiveConfig(cmd)

	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		c = nil
		fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
	}

	loc, err := resolveLocation(cfg.Latitude, cfg.Longitude, cfg.City, cfg.Country, c)
	if err != nil {
		return err
	}

	method := cfg.MethodOrDefault(-1)
	school := cfg.SchoolOrDefault(-1)

	var notifier notify.Notifier = notify.DesktopNotifier{}
	if flagNotifyDryRun {
		notifier = notify.LogNotifier{}
	}

	scheduler := notify.NewScheduler(notifier, cfg.Language)
	prefs := notify.Preferences{
		WaterReminder:       cfg.WaterReminderOrDefault(true),
		PrayerNotifications: cfg.PrayerNotificationsOrDefault(false),
	}

	fetch := func(date time.Time) (api.Timings, error) {
		result, err := fetchTimings(date, loc, method, school, c)
		if err != nil {
			return api.Timings{}, err
		}
		return result.Timings, nil
	}

	daemon := notify.NewDaemon(scheduler, prefs, fetch)
	if err := daemon.Start(); err != nil {
		return fmt.Errorf("failed to start reminder daemon: %w", err)
	}

	log.Info().
		Str("location", loc.Label()).
		Bool("dry_run", flagNotifyDryRun).
		Bool("water_reminder", prefs.WaterReminder).
		Bool("prayer_notifications", prefs.PrayerNotifications).
		Int("pending", daemon.Pending()).
		Msg("reminder daemon running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutting down")
	daemon.Stop()
	return nil
}
