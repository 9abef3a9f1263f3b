package geo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// testDetector returns a Detector pointed at the given test server.
func testDetector(url string) *Detector {
	d := NewDetector()
	d.BaseURL = url
	return d
}

func TestDetect_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := ipAPIResponse{
			Status:   "success",
			Lat:      41.0082,
			Lon:      28.9784,
			City:     "Istanbul",
			Country:  "Turkey",
			Timezone: "Europe/Istanbul",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	loc, err := testDetector(server.URL).Detect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Latitude != 41.0082 {
		t.Errorf("Latitude = %v, want %v", loc.Latitude, 41.0082)
	}
	if loc.Longitude != 28.9784 {
		t.Errorf("Longitude = %v, want %v", loc.Longitude, 28.9784)
	}
	if loc.City != "Istanbul" {
		t.Errorf("City = %q, want %q", loc.City, "Istanbul")
	}
	if loc.Country != "Turkey" {
		t.Errorf("Country = %q, want %q", loc.Country, "Turkey")
	}
	if loc.Timezone != "Europe/Istanbul" {
		t.Errorf("Timezone = %q, want %q", loc.Timezone, "Europe/Istanbul")
	}
}

func TestDetect_APIFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := ipAPIResponse{
			Status:  "fail",
			Message: "reserved range",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	_, err := testDetector(server.URL).Detect()
	if err == nil {
		t.Fatal("expected error for failed status, got nil")
	}
	if !strings.Contains(err.Error(), "reserved range") {
		t.Errorf("error should contain message, got: %v", err)
	}
}

func TestDetect_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testDetector(server.URL).Detect()
	if err == nil {
		t.Fatal("expected error for HTTP 500, got nil")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error should mention 500, got: %v", err)
	}
}

func TestDetect_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	_, err := testDetector(server.URL).Detect()
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("error should mention decode, got: %v", err)
	}
}

func TestDetect_ConnectionRefused(t *testing.T) {
	_, err := testDetector("http://127.0.0.1:1").Detect() // nothing listening
	if err == nil {
		t.Fatal("expected error for connection refused, got nil")
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"city and country", Location{City: "Istanbul", Country: "Turkey"}, "Istanbul, Turkey"},
		{"city only", Location{City: "Istanbul"}, "Istanbul"},
		{"country only", Location{Country: "Turkey"}, "Turkey"},
		{"coordinates only", Location{Latitude: 41.0082, Longitude: 28.9784}, "41.0082, 28.9784"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
