package geo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Location holds geographic coordinates detected from the user's IP.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// String returns a human-readable "City, Country" label for display.
func (l Location) String() string {
	if l.City == "" && l.Country == "" {
		return fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude)
	}
	if l.City == "" {
		return l.Country
	}
	if l.Country == "" {
		return l.City
	}
	return l.City + ", " + l.Country
}

// ipAPIResponse maps the response from ip-api.com.
type ipAPIResponse struct {
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Timezone string  `json:"timezone"`
}

// DefaultURL is the ip-api.com endpoint used when a Detector is
// created with an empty URL. A free service, no API key required.
const DefaultURL = "http://ip-api.com/json/?fields=status,message,lat,lon,city,country,timezone"

// Detector resolves the user's location from their public IP address.
// BaseURL is exported so tests can point it at an httptest server.
type Detector struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewDetector creates a Detector against the default ip-api.com endpoint.
func NewDetector() *Detector {
	return &Detector{
		BaseURL: DefaultURL,
		HTTPClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Detect determines the user's location from their public IP address.
func (d *Detector) Detect() (*Location, error) {
	resp, err := d.HTTPClient.Get(d.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", result.Message)
	}

	return &Location{
		Latitude:  result.Lat,
		Longitude: result.Lon,
		City:      result.City,
		Country:   result.Country,
		Timezone:  result.Timezone,
	}, nil
}

// DetectLocation resolves the user's location using the default detector.
func DetectLocation() (*Location, error) {
	return NewDetector().Detect()
}
