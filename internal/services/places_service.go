package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripcraft/internal/models/response_models"
	"tripcraft/pkg/utils"
)

type PlaceCategory string

const (
	CategoryAttraction PlaceCategory = "tourist_attraction"
	CategoryRestaurant PlaceCategory = "restaurant"
	CategoryMuseum     PlaceCategory = "museum"
	CategoryLodging    PlaceCategory = "lodging"
)

// DefaultSearchRadius is the nearby-search radius in meters.
const DefaultSearchRadius = 15000

const maxPlacesPerCategory = 15

type PlacesServiceInterface interface {
	// SearchNearby returns normalized candidates in provider order.
	// ErrProviderUnavailable means no credential is configured; callers treat
	// any error as an empty result set.
	SearchNearby(ctx context.Context, lat, lon float64, category PlaceCategory, radius int) ([]response_models.PlaceCandidate, error)
}

type GooglePlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGooglePlacesClient(apiKey string) *GooglePlacesClient {
	return &GooglePlacesClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  apiKey,
		BaseURL: "https://maps.googleapis.com",
	}
}

type placesResponse struct {
	Results []placeResult `json:"results"`
	Status  string        `json:"status"`
}

// Optional provider fields are pointers so missing values can be defaulted
// explicitly at this boundary.
type placeResult struct {
	Name             string   `json:"name"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	PriceLevel       *int     `json:"price_level,omitempty"`
	Vicinity         *string  `json:"vicinity,omitempty"`
	PlaceID          string   `json:"place_id"`
	Types            []string `json:"types"`
}

func (p *GooglePlacesClient) SearchNearby(ctx context.Context, lat, lon float64, category PlaceCategory, radius int) ([]response_models.PlaceCandidate, error) {
	if p.APIKey == "" {
		return nil, utils.ErrProviderUnavailable
	}
	if radius <= 0 {
		radius = DefaultSearchRadius
	}

	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lon))
	q.Set("radius", strconv.Itoa(radius))
	q.Set("type", string(category))
	q.Set("key", p.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/maps/api/place/nearbysearch/json?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places bad status: %s", resp.Status)
	}

	var payload placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places decode: %w", err)
	}

	results := payload.Results
	if len(results) > maxPlacesPerCategory {
		results = results[:maxPlacesPerCategory]
	}

	places := make([]response_models.PlaceCandidate, 0, len(results))
	for _, r := range results {
		candidate := response_models.PlaceCandidate{
			Name:       r.Name,
			PriceLevel: 2,
			PlaceID:    r.PlaceID,
			Types:      r.Types,
		}
		if r.Rating != nil {
			candidate.Rating = *r.Rating
		}
		if r.UserRatingsTotal != nil {
			candidate.ReviewsCount = *r.UserRatingsTotal
		}
		if r.PriceLevel != nil {
			candidate.PriceLevel = *r.PriceLevel
		}
		if r.Vicinity != nil {
			candidate.Vicinity = *r.Vicinity
		}
		if r.PlaceID != "" {
			candidate.MapsURL = "https://www.google.com/maps/place/?q=place_id:" + r.PlaceID
		}
		places = append(places, candidate)
	}

	return places, nil
}
