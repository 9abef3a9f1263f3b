package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/systemconf/iftar-cli/internal/api"
	"github.com/systemconf/iftar-cli/internal/geo"
)

const (
	timingsCacheFile  = "timings_%s.json"  // keyed by hash
	calendarCacheFile = "calendar_%s.json" // keyed by hash
	geoCacheFile      = "geolocation.json"
	geoTTL            = 24 * time.Hour
)

// Cache provides file-based caching for prayer times, monthly calendars
// and geolocation data.
type Cache struct {
	dir string
}

// TimingsCacheEntry stores a day's prayer times along with metadata for validation.
type TimingsCacheEntry struct {
	Date     string       `json:"date"` // YYYY-MM-DD
	Method   int          `json:"method"`
	School   int          `json:"school"`
	Timings  api.Timings  `json:"timings"`
	DateInfo api.DateInfo `json:"date_info"`
	Meta     api.Meta     `json:"meta"`
}

// CalendarCacheEntry stores a month's worth of daily data for the imsakiye view.
type CalendarCacheEntry struct {
	Month  string     `json:"month"` // YYYY-MM
	Method int        `json:"method"`
	School int        `json:"school"`
	Days   []api.Data `json:"days"`
}

// GeoCacheEntry stores a cached geolocation result with a timestamp.
type GeoCacheEntry struct {
	Location geo.Location `json:"location"`
	CachedAt time.Time    `json:"cached_at"`
}

// New creates a Cache rooted at the given directory.
// If dir is empty, it defaults to ~/.cache/iftar/.
func New(dir string) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".cache", "iftar")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create cache directory %s: %w", dir, err)
	}

	return &Cache{dir: dir}, nil
}

// cacheKey builds a deterministic hash from the parameters that affect prayer times.
// This ensures different locations/methods/schools get separate cache files.
func cacheKey(period string, lat, lon float64, city, country string, method, school int) string {
	raw := fmt.Sprintf("%s|%.6f|%.6f|%s|%s|%d|%d", period, lat, lon, city, country, method, school)
	h := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", h[:8]) // 16 hex chars is plenty for uniqueness
}

// LoadTimings attempts to read cached prayer times for the given parameters.
// Returns nil if the cache is missing or stale (wrong date).
func (c *Cache) LoadTimings(date time.Time, lat, lon float64, city, country string, method, school int) *TimingsCacheEntry {
	dateStr := date.Format("2006-01-02")
	key := cacheKey(dateStr, lat, lon, city, country, method, school)
	path := filepath.Join(c.dir, fmt.Sprintf(timingsCacheFile, key))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entry TimingsCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	// Stale cache for a previous day is useless.
	if entry.Date != dateStr {
		return nil
	}

	return &entry
}

// SaveTimings writes prayer times to the cache.
func (c *Cache) SaveTimings(date time.Time, lat, lon float64, city, country string, method, school int, resp *api.Response) error {
	dateStr := date.Format("2006-01-02")
	key := cacheKey(dateStr, lat, lon, city, country, method, school)
	path := filepath.Join(c.dir, fmt.Sprintf(timingsCacheFile, key))

	entry := TimingsCacheEntry{
		Date:     dateStr,
		Method:   method,
		School:   school,
		Timings:  resp.Data.Timings,
		DateInfo: resp.Data.Date,
		Meta:     resp.Data.Meta,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// LoadCalendar attempts to read a cached monthly calendar.
// Returns nil if the cache is missing or for a different month.
func (c *Cache) LoadCalendar(year, month int, lat, lon float64, city, country string, methodID, school int) *CalendarCacheEntry {
	monthStr := fmt.Sprintf("%04d-%02d", year, month)
	key := cacheKey(monthStr, lat, lon, city, country, methodID, school)
	path := filepath.Join(c.dir, fmt.Sprintf(calendarCacheFile, key))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entry CalendarCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	if entry.Month != monthStr || len(entry.Days) == 0 {
		return nil
	}

	return &entry
}

// SaveCalendar writes a monthly calendar to the cache.
func (c *Cache) SaveCalendar(year, month int, lat, lon float64, city, country string, methodID, school int, days []api.Data) error {
	monthStr := fmt.Sprintf("%04d-%02d", year, month)
	key := cacheKey(monthStr, lat, lon, city, country, methodID, school)
	path := filepath.Join(c.dir, fmt.Sprintf(calendarCacheFile, key))

	entry := CalendarCacheEntry{
		Month:  monthStr,
		Method: methodID,
		School: school,
		Days:   days,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal calendar cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write calendar cache: %w", err)
	}

	return nil
}

// LoadGeo attempts to read a cached geolocation result.
// Returns nil if the cache is missing or older than the TTL (24 hours).
func (c *Cache) LoadGeo() *geo.Location {
	path := filepath.Join(c.dir, geoCacheFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entry GeoCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	if time.Since(entry.CachedAt) > geoTTL {
		return nil
	}

	return &entry.Location
}

// SaveGeo writes a geolocation result to the cache.
func (c *Cache) SaveGeo(loc *geo.Location) error {
	path := filepath.Join(c.dir, geoCacheFile)

	entry := GeoCacheEntry{
		Location: *loc,
		CachedAt: time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal geo cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write geo cache: %w", err)
	}

	return nil
}
