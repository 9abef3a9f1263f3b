package cli

import (
	"fmt"
	"time"

	"github.com/systemconf/iftar-cli/internal/api"
	"github.com/systemconf/iftar-cli/internal/cache"
	"github.com/systemconf/iftar-cli/internal/cities"
	"github.com/systemconf/iftar-cli/internal/geo"
)

// locationMode describes how the user specified their location.
type locationMode int

const (
	locationCoords locationMode = iota
	locationCity
	locationAuto
)

// resolvedLocation holds the result of location resolution.
type resolvedLocation struct {
	Mode     locationMode
	Lat, Lon float64
	City     string
	Country  string
	Timezone string // optional hint from geo-detection
}

// Label returns a "City, Country" string for display, falling back to the
// nearest Turkish province for bare coordinates.
func (l resolvedLocation) Label() string {
	if l.City != "" && l.Country != "" {
		return l.City + ", " + l.Country
	}
	if l.City != "" {
		return l.City
	}
	if l.Lat != 0 || l.Lon != 0 {
		return cities.Nearest(l.Lat, l.Lon).Name
	}
	return ""
}

// fetchResult holds the data returned from a prayer times fetch.
type fetchResult struct {
	Timings  api.Timings
	Meta     api.Meta
	DateInfo api.DateInfo
}

// dayData holds a single day's data for the imsakiye output.
type dayData struct {
	Date     time.Time
	Timings  api.Timings
	DateInfo api.DateInfo
	Meta     api.Meta
}

// resolveLocation determines the effective location based on user flags, config, or auto-detection.
// Priority: CLI flags > config > cached geolocation > IP auto-detect.
// A city matching a Turkish province fills in its coordinates and country,
// so `--city istanbul` works without --country.
func resolveLocation(lat, lon float64, city, country string, c *cache.Cache) (resolvedLocation, error) {
	switch {
	case lat != 0 || lon != 0:
		return resolvedLocation{Mode: locationCoords, Lat: lat, Lon: lon}, nil
	case city != "":
		if province, ok := cities.Find(city); ok {
			if country == "" {
				country = "Turkey"
			}
			return resolvedLocation{
				Mode:    locationCity,
				Lat:     province.Lat,
				Lon:     province.Lng,
				City:    province.Name,
				Country: country,
			}, nil
		}
		if country == "" {
			return resolvedLocation{}, fmt.Errorf("--country is required when --city is not a Turkish province")
		}
		return resolvedLocation{Mode: locationCity, City: city, Country: country}, nil
	default:
		// Try cached geolocation first.
		if c != nil {
			if cached := c.LoadGeo(); cached != nil {
				return resolvedLocation{
					Mode:     locationAuto,
					Lat:      cached.Latitude,
					Lon:      cached.Longitude,
					City:     cached.City,
					Country:  cached.Country,
					Timezone: cached.Timezone,
				}, nil
			}
		}

		// Fall back to IP-based geolocation.
		detected, err := geo.DetectLocation()
		if err != nil {
			return resolvedLocation{}, fmt.Errorf("no location specified and auto-detection failed: %w", err)
		}

		// Cache the detected location.
		if c != nil {
			_ = c.SaveGeo(detected) // best-effort
		}

		return resolvedLocation{
			Mode:     locationAuto,
			Lat:      detected.Latitude,
			Lon:      detected.Longitude,
			City:     detected.City,
			Country:  detected.Country,
			Timezone: detected.Timezone,
		}, nil
	}
}

// fetchTimings returns prayer timings for the given date, using the cache when available.
func fetchTimings(date time.Time, loc resolvedLocation, method, school int, c *cache.Cache) (*fetchResult, error) {
	// Try cache first.
	if c != nil {
		if entry := c.LoadTimings(date, loc.Lat, loc.Lon, loc.City, loc.Country, method, school); entry != nil {
			return &fetchResult{
				Timings:  entry.Timings,
				Meta:     entry.Meta,
				DateInfo: entry.DateInfo,
			}, nil
		}
	}

	// Cache miss -- fetch from API.
	client := api.NewClient()
	var (
		resp *api.Response
		err  error
	)

	switch loc.Mode {
	case locationCity:
		resp, err = client.FetchByAddress(date, loc.City, loc.Country, method, school)
	default:
		resp, err = client.FetchByCoordinates(date, loc.Lat, loc.Lon, method, school)
	}

	if err != nil {
		return nil, err
	}

	// Write to cache (best-effort).
	if c != nil {
		_ = c.SaveTimings(date, loc.Lat, loc.Lon, loc.City, loc.Country, method, school, resp)
	}

	return &fetchResult{
		Timings:  resp.Data.Timings,
		Meta:     resp.Data.Meta,
		DateInfo: resp.Data.Date,
	}, nil
}

// fetchMonth returns a full month of daily data, using the cache when available.
func fetchMonth(year int, month time.Month, loc resolvedLocation, method, school int, c *cache.Cache) ([]dayData, error) {
	var days []api.Data

	if c != nil {
		if entry := c.LoadCalendar(year, int(month), loc.Lat, loc.Lon, loc.City, loc.Country, method, school); entry != nil {
			days = entry.Days
		}
	}

	if days == nil {
		client := api.NewClient()
		var (
			resp *api.CalendarResponse
			err  error
		)

		switch loc.Mode {
		case locationCity:
			resp, err = client.FetchCalendarByAddress(year, month, loc.City, loc.Country, method, school)
		default:
			resp, err = client.FetchCalendarByCoordinates(year, month, loc.Lat, loc.Lon, method, school)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch calendar for %d-%02d: %w", year, int(month), err)
		}

		days = resp.Data

		if c != nil {
			_ = c.SaveCalendar(year, int(month), loc.Lat, loc.Lon, loc.City, loc.Country, method, school, days)
		}
	}

	result := make([]dayData, 0, len(days))
	for i, d := range days {
		result = append(result, dayData{
			Date:     time.Date(year, month, i+1, 0, 0, 0, 0, time.Local),
			Timings:  d.Timings,
			DateInfo: d.Date,
			Meta:     d.Meta,
		})
	}
	return result, nil
}
