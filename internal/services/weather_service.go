package services

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripcraft/internal/models/response_models"
)

type WeatherServiceInterface interface {
	// Current returns a weather snapshot, or nil when the provider is
	// unavailable or errors. Weather is never fatal to a request.
	Current(ctx context.Context, lat, lon float64) *response_models.WeatherInfo
}

type OpenWeatherClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  apiKey,
		BaseURL: "http://api.openweathermap.org",
	}
}

func (w *OpenWeatherClient) Current(ctx context.Context, lat, lon float64) *response_models.WeatherInfo {
	if w.APIKey == "" {
		return nil
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", w.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return nil
	}

	resp, err := w.HTTP.Do(req)
	if err != nil {
		log.Printf("Error getting weather info: %v", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("Error getting weather info: %s", resp.Status)
		return nil
	}

	var payload struct {
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Error getting weather info: %v", err)
		return nil
	}
	if len(payload.Weather) == 0 {
		return nil
	}

	return &response_models.WeatherInfo{
		Temperature: int(math.Round(payload.Main.Temp)),
		Description: titleCase(payload.Weather[0].Description),
		Humidity:    payload.Main.Humidity,
		FeelsLike:   int(math.Round(payload.Main.FeelsLike)),
	}
}
