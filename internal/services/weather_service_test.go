package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{"main":{"temp":27.6,"feels_like":30.2,"humidity":78},"weather":[{"description":"scattered clouds"}]}`))
	}))
	defer server.Close()

	client := NewOpenWeatherClient("test-key")
	client.BaseURL = server.URL

	info := client.Current(context.Background(), 25.7617, -80.1918)
	require.NotNil(t, info)
	assert.Equal(t, 28, info.Temperature)
	assert.Equal(t, 30, info.FeelsLike)
	assert.Equal(t, 78, info.Humidity)
	assert.Equal(t, "Scattered Clouds", info.Description)
}

func TestCurrentWeatherDegradesToNil(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer failing.Close()

	garbled := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer garbled.Close()

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main":{"temp":20},"weather":[]}`))
	}))
	defer empty.Close()

	tests := []struct {
		name    string
		apiKey  string
		baseURL string
	}{
		{"missing api key", "", failing.URL},
		{"non-200 response", "test-key", failing.URL},
		{"undecodable body", "test-key", garbled.URL},
		{"no weather entries", "test-key", empty.URL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewOpenWeatherClient(tt.apiKey)
			client.BaseURL = tt.baseURL
			assert.Nil(t, client.Current(context.Background(), 0, 0))
		})
	}
}
