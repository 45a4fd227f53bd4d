package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"tripcraft/internal/models/response_models"
	"tripcraft/internal/models/staticdata"
	"tripcraft/pkg/utils"
)

type GeocodingServiceInterface interface {
	// Resolve turns free-text city/country into coordinates. This is the only
	// provider call whose failure is fatal to itinerary generation.
	Resolve(ctx context.Context, city, country string) (*response_models.Coordinate, error)
}

type OpenWeatherGeocoder struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewOpenWeatherGeocoder(apiKey string) *OpenWeatherGeocoder {
	return &OpenWeatherGeocoder{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  apiKey,
		BaseURL: "http://api.openweathermap.org",
	}
}

type geoResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

func (g *OpenWeatherGeocoder) Resolve(ctx context.Context, city, country string) (*response_models.Coordinate, error) {
	if g.APIKey == "" {
		log.Printf("Geocoding API key not configured, using static coordinates for %q", city)
		return g.resolveStatic(city)
	}

	cityClean := titleCase(strings.TrimSpace(city))
	queries := []string{city, cityClean, city + "," + country, cityClean + "," + country}

	for _, query := range queries {
		results, err := g.direct(ctx, query)
		if err != nil {
			log.Printf("Geocoding query %q failed: %v", query, err)
			continue
		}
		if len(results) == 0 {
			continue
		}

		match := preferredMatch(results, city)
		coord := &response_models.Coordinate{
			Latitude:  match.Lat,
			Longitude: match.Lon,
			Name:      match.Name,
			Country:   match.Country,
			State:     match.State,
		}
		if coord.Country == "" {
			coord.Country = country
		}
		return coord, nil
	}

	return g.resolveStatic(city)
}

func (g *OpenWeatherGeocoder) direct(ctx context.Context, query string) ([]geoResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", "10")
	q.Set("appid", g.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/geo/1.0/direct?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding bad status: %s", resp.Status)
	}

	var results []geoResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocoding decode: %w", err)
	}
	return results, nil
}

func (g *OpenWeatherGeocoder) resolveStatic(city string) (*response_models.Coordinate, error) {
	if coord, ok := staticdata.LookupCityCoordinates(city); ok {
		return &coord, nil
	}
	return nil, utils.ErrLocationNotFound
}

// preferredMatch picks the result whose name overlaps the requested city,
// falling back to the provider's first hit.
func preferredMatch(results []geoResult, city string) geoResult {
	needle := strings.ToLower(strings.TrimSpace(city))
	for _, r := range results {
		name := strings.ToLower(r.Name)
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return r
		}
	}
	return results[0]
}

func titleCase(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		runes := []rune(f)
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}
