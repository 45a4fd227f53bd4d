package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"tripcraft/internal/models/staticdata"
)

type DirectoryServiceInterface interface {
	// Countries returns the selectable country names, sorted. Falls back to
	// the static list when the countries API is slow or unreachable.
	Countries(ctx context.Context) []string

	// Cities returns the selectable cities for a country.
	Cities(country string) []string
}

type DirectoryService struct {
	HTTP    *http.Client
	BaseURL string
}

func NewDirectoryService() DirectoryServiceInterface {
	return &DirectoryService{
		HTTP:    &http.Client{Timeout: 3 * time.Second},
		BaseURL: "https://restcountries.com",
	}
}

func (d *DirectoryService) Countries(ctx context.Context) []string {
	countries, err := d.fetchCountries(ctx)
	if err != nil {
		log.Printf("Countries API failed: %v", err)
	} else if len(countries) > 50 {
		sort.Strings(countries)
		return countries
	}

	fallback := append([]string(nil), staticdata.FallbackCountries...)
	sort.Strings(fallback)
	return fallback
}

func (d *DirectoryService) fetchCountries(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.BaseURL+"/v3.1/all?fields=name", nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("countries bad status: %s", resp.Status)
	}

	var payload []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("countries decode: %w", err)
	}

	countries := make([]string, 0, len(payload))
	for _, c := range payload {
		if c.Name.Common != "" && len(c.Name.Common) < 50 {
			countries = append(countries, c.Name.Common)
		}
	}
	return countries, nil
}

func (d *DirectoryService) Cities(country string) []string {
	if cities, ok := staticdata.PopularCities[country]; ok {
		return cities
	}
	log.Printf("Using fallback cities for %s", country)
	return staticdata.GenericCities(country)
}
