package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// DefaultMethod is the Diyanet İşleri Başkanlığı calculation method,
// the default for the Turkish audience this tool was built for.
const DefaultMethod = 13

// Client communicates with the Al Adhan prayer times API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the API base URL. Defaults to the Al Adhan API.
	// Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a new API client with sensible defaults.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: defaultBaseURL,
	}
}

// FetchByCoordinates fetches prayer times for the given date and coordinates.
// Pass method or school as -1 to let the API choose.
func (c *Client) FetchByCoordinates(date time.Time, lat, lon float64, method, school int) (*Response, error) {
	dateStr := date.Format("02-01-2006")
	endpoint := fmt.Sprintf("%s/timings/%s", c.BaseURL, dateStr)

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	addMethodParams(params, method, school)

	var resp Response
	if err := c.doRequest(endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	return &resp, nil
}

// FetchByAddress fetches prayer times for a free-form "City,Country" address.
// This is the endpoint the city picker uses.
func (c *Client) FetchByAddress(date time.Time, city, country string, method, school int) (*Response, error) {
	dateStr := date.Format("02-01-2006")
	endpoint := fmt.Sprintf("%s/timingsByAddress/%s", c.BaseURL, dateStr)

	params := url.Values{}
	params.Set("address", city+","+country)
	addMethodParams(params, method, school)

	var resp Response
	if err := c.doRequest(endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	return &resp, nil
}

// FetchCalendarByCoordinates fetches a whole month of prayer times for the
// given coordinates. Backs the imsakiye table.
func (c *Client) FetchCalendarByCoordinates(year int, month time.Month, lat, lon float64, method, school int) (*CalendarResponse, error) {
	endpoint := fmt.Sprintf("%s/calendar/%d/%d", c.BaseURL, year, int(month))

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	addMethodParams(params, method, school)

	var resp CalendarResponse
	if err := c.doRequest(endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	return &resp, nil
}

// FetchCalendarByAddress fetches a whole month of prayer times for a
// free-form "City,Country" address.
func (c *Client) FetchCalendarByAddress(year int, month time.Month, city, country string, method, school int) (*CalendarResponse, error) {
	endpoint := fmt.Sprintf("%s/calendarByAddress/%d/%d", c.BaseURL, year, int(month))

	params := url.Values{}
	params.Set("address", city+","+country)
	addMethodParams(params, method, school)

	var resp CalendarResponse
	if err := c.doRequest(endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	return &resp, nil
}

// addMethodParams sets the optional method/school query parameters.
// Negative values mean "let the API decide".
func addMethodParams(params url.Values, method, school int) {
	if method >= 0 {
		params.Set("method", fmt.Sprintf("%d", method))
	}
	if school >= 0 {
		params.Set("school", fmt.Sprintf("%d", school))
	}
}

// doRequest performs a GET and decodes the JSON body into out.
func (c *Client) doRequest(endpoint string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}

	return nil
}
