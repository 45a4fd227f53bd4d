package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcraft/pkg/utils"
)

func TestSearchNearbyWithoutKey(t *testing.T) {
	client := NewGooglePlacesClient("")
	_, err := client.SearchNearby(context.Background(), 0, 0, CategoryRestaurant, 0)
	assert.ErrorIs(t, err, utils.ErrProviderUnavailable)
}

func TestSearchNearbyDefaultsMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "restaurant", r.URL.Query().Get("type"))
		assert.Equal(t, "15000", r.URL.Query().Get("radius"))
		w.Write([]byte(`{"status":"OK","results":[
			{"name":"Full House","rating":4.7,"user_ratings_total":321,"price_level":3,"vicinity":"12 Ocean Dr","place_id":"abc123","types":["restaurant"]},
			{"name":"Bare Bones","place_id":"def456"}
		]}`))
	}))
	defer server.Close()

	client := NewGooglePlacesClient("test-key")
	client.BaseURL = server.URL

	places, err := client.SearchNearby(context.Background(), 25.76, -80.19, CategoryRestaurant, 0)
	require.NoError(t, err)
	require.Len(t, places, 2)

	full := places[0]
	assert.Equal(t, 4.7, full.Rating)
	assert.Equal(t, 321, full.ReviewsCount)
	assert.Equal(t, 3, full.PriceLevel)
	assert.Equal(t, "12 Ocean Dr", full.Vicinity)
	assert.Equal(t, "https://www.google.com/maps/place/?q=place_id:abc123", full.MapsURL)

	bare := places[1]
	assert.Zero(t, bare.Rating)
	assert.Zero(t, bare.ReviewsCount)
	assert.Equal(t, 2, bare.PriceLevel)
	assert.Empty(t, bare.Vicinity)
}

func TestSearchNearbyCapsResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results := make([]map[string]any, 0, 25)
		for i := 0; i < 25; i++ {
			results = append(results, map[string]any{"name": fmt.Sprintf("Place %d", i), "place_id": fmt.Sprintf("id%d", i)})
		}
		json.NewEncoder(w).Encode(map[string]any{"status": "OK", "results": results})
	}))
	defer server.Close()

	client := NewGooglePlacesClient("test-key")
	client.BaseURL = server.URL

	places, err := client.SearchNearby(context.Background(), 0, 0, CategoryAttraction, 5000)
	require.NoError(t, err)
	assert.Len(t, places, 15)
}

func TestSearchNearbyErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGooglePlacesClient("test-key")
	client.BaseURL = server.URL

	_, err := client.SearchNearby(context.Background(), 0, 0, CategoryMuseum, 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, utils.ErrProviderUnavailable)
}
