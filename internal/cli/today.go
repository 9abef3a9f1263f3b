package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/systemconf/iftar-cli/internal/cache"
	"github.com/systemconf/iftar-cli/internal/display"
	"github.com/systemconf/iftar-cli/internal/prayer"
)

func runToday(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		c = nil
		fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
	}

	now := time.Now()

	loc, err := resolveLocation(cfg.Latitude, cfg.Longitude, cfg.City, cfg.Country, c)
	if err != nil {
		return err
	}

	method := cfg.MethodOrDefault(-1)
	school := cfg.SchoolOrDefault(-1)

	result, err := fetchTimings(now, loc, method, school, c)
	if err != nil {
		return err
	}

	// Re-anchor "now" to the schedule's timezone so the countdowns are
	// computed against the location being displayed, not the local clock.
	tz := loc.Timezone
	if tz == "" {
		tz = result.Meta.Timezone
	}
	if tz != "" {
		if tzLoc, err := time.LoadLocation(tz); err == nil {
			now = now.In(tzLoc)
		}
	}

	if FlagJSON {
		return printTodayJSON(result, loc, now, cfg.Language)
	}

	printTodayRich(result, loc, now, cfg.Language, cfg.TimeFormat)
	return nil
}

// formatClock reformats a normalized HH:MM string per the configured time format.
func formatClock(raw, timeFormat string) string {
	s := prayer.Normalize(raw)
	if timeFormat != "12h" {
		return s
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return s
	}
	return t.Format("3:04 PM")
}

// printTodayRich renders the styled terminal output for today's schedule.
func printTodayRich(result *fetchResult, loc resolvedLocation, now time.Time, lang, timeFormat string) {
	title := "Today"
	iftarLabel, sahurLabel := "Iftar in", "Sahur ends in"
	if lang == "tr" {
		title = "Bugün"
		iftarLabel, sahurLabel = "İftara kalan", "Sahura kalan"
	}

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold(title))
	fmt.Println()

	if label := loc.Label(); label != "" {
		fmt.Printf("  %s\n", label)
	}
	fmt.Printf("  %s\n", formatGregorianDate(now, result))
	if hijri := result.DateInfo.Hijri.Format(); hijri != "" {
		fmt.Printf("  %s\n", hijri)
	}
	if result.DateInfo.Hijri.IsRamadan() {
		note := "Ramadan Mubarak"
		if lang == "tr" {
			note = "Ramazan-ı Şerif mübarek olsun"
		}
		fmt.Printf("  %s\n", display.Yellow(note))
	}
	fmt.Println()

	active := prayer.ActivePrayer(&result.Timings, now)
	for _, name := range prayer.MainPrayers {
		raw, ok := prayer.TimeFor(result.Timings, name)
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %s %-14s %s",
			prayer.Icon(name),
			prayer.DisplayName(name, lang),
			formatClock(raw, timeFormat))
		if name == active {
			fmt.Println(display.Accent(line))
		} else {
			fmt.Println(line)
		}
	}
	fmt.Println()

	if prayer.Celebrating(result.Timings.Maghrib, now) {
		msg := "🎉 It is iftar time!"
		if lang == "tr" {
			msg = "🎉 İftar vakti! Allah kabul etsin."
		}
		fmt.Printf("  %s\n\n", display.Green(msg))
		return
	}

	if secs, err := prayer.Countdown(result.Timings.Maghrib, now); err == nil {
		d := prayer.FormatDuration(secs)
		fmt.Printf("  %-14s %s\n", iftarLabel,
			display.Accent(fmt.Sprintf("%s:%s:%s", d.Hours, d.Minutes, d.Seconds)))
	}
	if secs, err := prayer.Countdown(result.Timings.Imsak, now); err == nil {
		d := prayer.FormatDuration(secs)
		fmt.Printf("  %-14s %s\n", sahurLabel,
			display.Cyan(fmt.Sprintf("%s:%s:%s", d.Hours, d.Minutes, d.Seconds)))
	}
	fmt.Println()
}

// formatGregorianDate returns a formatted Gregorian date string.
// Prefers API data; falls back to formatting `now`.
func formatGregorianDate(now time.Time, result *fetchResult) string {
	g := result.DateInfo.Gregorian
	if g.Day != "" && g.Month.En != "" && g.Year != "" {
		return g.Day + " " + g.Month.En + " " + g.Year
	}
	return now.Format("02 Jan 2006")
}

// todayJSON is the JSON output structure for the root command.
type todayJSON struct {
	Location todayJSONLocation `json:"location"`
	Date     todayJSONDate     `json:"date"`
	Timings  map[string]string `json:"timings"`
	Active   string            `json:"active"`
	Iftar    *todayJSONTarget  `json:"iftar,omitempty"`
	Sahur    *todayJSONTarget  `json:"sahur,omitempty"`
}

type todayJSONLocation struct {
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type todayJSONDate struct {
	Gregorian string `json:"gregorian"`
	Hijri     string `json:"hijri"`
	Ramadan   bool   `json:"ramadan"`
}

type todayJSONTarget struct {
	Time      string `json:"time"`
	Remaining string `json:"remaining"`
}

// printTodayJSON renders structured JSON output.
func printTodayJSON(result *fetchResult, loc resolvedLocation, now time.Time, lang string) error {
	timings := make(map[string]string)
	for _, name := range prayer.MainPrayers {
		if raw, ok := prayer.TimeFor(result.Timings, name); ok {
			timings[strings.ToLower(name)] = prayer.Normalize(raw)
		}
	}

	out := todayJSON{
		Location: todayJSONLocation{
			City:      loc.City,
			Country:   loc.Country,
			Timezone:  result.Meta.Timezone,
			Latitude:  result.Meta.Latitude,
			Longitude: result.Meta.Longitude,
		},
		Date: todayJSONDate{
			Gregorian: formatGregorianDate(now, result),
			Hijri:     result.DateInfo.Hijri.Format(),
			Ramadan:   result.DateInfo.Hijri.IsRamadan(),
		},
		Timings: timings,
		Active:  strings.ToLower(prayer.ActivePrayer(&result.Timings, now)),
	}

	if secs, err := prayer.Countdown(result.Timings.Maghrib, now); err == nil {
		d := prayer.FormatDuration(secs)
		out.Iftar = &todayJSONTarget{
			Time:      prayer.Normalize(result.Timings.Maghrib),
			Remaining: fmt.Sprintf("%s:%s:%s", d.Hours, d.Minutes, d.Seconds),
		}
	}
	if secs, err := prayer.Countdown(result.Timings.Imsak, now); err == nil {
		d := prayer.FormatDuration(secs)
		out.Sahur = &todayJSONTarget{
			Time:      prayer.Normalize(result.Timings.Imsak),
			Remaining: fmt.Sprintf("%s:%s:%s", d.Hours, d.Minutes, d.Seconds),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
