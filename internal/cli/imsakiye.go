package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/systemconf/iftar-cli/internal/cache"
	"github.com/systemconf/iftar-cli/internal/display"
	"github.com/systemconf/iftar-cli/internal/prayer"
)

func newImsakiyeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "imsakiye [year month]",
		Short: "Monthly imsakiye table",
		Long:  "Display the month's imsak and iftar schedule as a table.\nDefaults to the current month; pass a year and month to view another.",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  runImsakiye,
	}
}

func runImsakiye(cmd *cobra.Command, args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if len(args) == 2 {
		y, err := strconv.Atoi(args[0])
		if err != nil || y < 1 {
			return fmt.Errorf("invalid year %q", args[0])
		}
		m, err := strconv.Atoi(args[1])
		if err != nil || m < 1 || m > 12 {
			return fmt.Errorf("invalid month %q: must be 1-12", args[1])
		}
		year, month = y, time.Month(m)
	} else if len(args) == 1 {
		return fmt.Errorf("pass both a year and a month, or neither")
	}

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

	days, err := fetchMonth(year, month, loc, cfg.MethodOrDefault(-1), cfg.SchoolOrDefault(-1), c)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		return fmt.Errorf("no calendar data for %d-%02d", year, int(month))
	}

	if FlagJSON {
		return printImsakiyeJSON(days, loc, year, month)
	}

	printImsakiyeTable(days, loc, now, year, month, cfg.Language, cfg.TimeFormat)
	return nil
}

// imsakiyeColumns selects the prayer columns of the table.
var imsakiyeColumns = []string{"Imsak", "Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

func printImsakiyeTable(days []dayData, loc resolvedLocation, now time.Time, year int, month time.Month, lang, timeFormat string) {
	title := "İmsakiye"
	dateHeader := "Tarih"
	if lang != "tr" {
		title = "Imsakiye"
		dateHeader = "Date"
	}

	fmt.Println()
	fmt.Printf("  %s  %s %d\n", display.Bold(title), month, year)
	fmt.Println()
	if label := loc.Label(); label != "" {
		fmt.Printf("  %s\n", label)
	}
	if days[0].DateInfo.Hijri.IsRamadan() || days[len(days)-1].DateInfo.Hijri.IsRamadan() {
		note := "Ramadan"
		if lang == "tr" {
			note = "Ramazan ayı"
		}
		fmt.Printf("  %s\n", display.Yellow(note))
	}
	fmt.Println()

	headers := []string{dateHeader}
	for _, name := range imsakiyeColumns {
		headers = append(headers, prayer.DisplayName(name, lang))
	}
	tbl := display.NewTable(headers)

	todayStr := now.Format("2006-01-02")
	for i, dd := range days {
		row := []string{dd.Date.Format("02 Mon")}
		for _, name := range imsakiyeColumns {
			raw, ok := prayer.TimeFor(dd.Timings, name)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, formatClock(raw, timeFormat))
		}
		tbl.AddRow(row)

		if dd.Date.Format("2006-01-02") == todayStr {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Print(tbl.Render())
	fmt.Println()
}

// imsakiyeJSON is the JSON structure for the imsakiye command.
type imsakiyeJSON struct {
	Location todayJSONLocation `json:"location"`
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Days     []imsakiyeJSONDay `json:"days"`
}

type imsakiyeJSONDay struct {
	Date    string            `json:"date"`
	Hijri   string            `json:"hijri"`
	Ramadan bool              `json:"ramadan"`
	Timings map[string]string `json:"timings"`
}

func printImsakiyeJSON(days []dayData, loc resolvedLocation, year int, month time.Month) error {
	out := imsakiyeJSON{
		Location: todayJSONLocation{
			City:      loc.City,
			Country:   loc.Country,
			Timezone:  days[0].Meta.Timezone,
			Latitude:  days[0].Meta.Latitude,
			Longitude: days[0].Meta.Longitude,
		},
		Year:  year,
		Month: int(month),
	}

	for _, dd := range days {
		timings := make(map[string]string)
		for _, name := range imsakiyeColumns {
			if raw, ok := prayer.TimeFor(dd.Timings, name); ok {
				timings[strings.ToLower(name)] = prayer.Normalize(raw)
			}
		}
		out.Days = append(out.Days, imsakiyeJSONDay{
			Date:    dd.Date.Format("2006-01-02"),
			Hijri:   dd.DateInfo.Hijri.Format(),
			Ramadan: dd.DateInfo.Hijri.IsRamadan(),
			Timings: timings,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
