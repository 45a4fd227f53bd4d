package staticdata

import (
	"strings"

	"tripcraft/internal/models/response_models"
)

// cityCoordinates seeds the geocoding fallback for popular destinations so a
// missing provider credential never blocks itinerary generation outright.
var cityCoordinates = map[string]response_models.Coordinate{
	"miami":         {Latitude: 25.7617, Longitude: -80.1918, Name: "Miami", Country: "US", State: "Florida"},
	"new orleans":   {Latitude: 29.9511, Longitude: -90.0715, Name: "New Orleans", Country: "US", State: "Louisiana"},
	"new york":      {Latitude: 40.7128, Longitude: -74.0060, Name: "New York", Country: "US", State: "New York"},
	"los angeles":   {Latitude: 34.0522, Longitude: -118.2437, Name: "Los Angeles", Country: "US", State: "California"},
	"chicago":       {Latitude: 41.8781, Longitude: -87.6298, Name: "Chicago", Country: "US", State: "Illinois"},
	"london":        {Latitude: 51.5074, Longitude: -0.1278, Name: "London", Country: "GB", State: "England"},
	"paris":         {Latitude: 48.8566, Longitude: 2.3522, Name: "Paris", Country: "FR", State: "Île-de-France"},
	"tokyo":         {Latitude: 35.6762, Longitude: 139.6503, Name: "Tokyo", Country: "JP", State: "Tokyo"},
	"sydney":        {Latitude: -33.8688, Longitude: 151.2093, Name: "Sydney", Country: "AU", State: "New South Wales"},
	"berlin":        {Latitude: 52.5200, Longitude: 13.4050, Name: "Berlin", Country: "DE", State: "Berlin"},
	"nassau":        {Latitude: 25.0443, Longitude: -77.3504, Name: "Nassau", Country: "BS", State: "New Providence"},
	"nicholls town": {Latitude: 25.4167, Longitude: -78.0167, Name: "Nicholls Town", Country: "BS", State: "Andros"},
}

// LookupCityCoordinates matches a free-text city against the seed table,
// trying progressively looser key normalizations.
func LookupCityCoordinates(city string) (response_models.Coordinate, bool) {
	lower := strings.ToLower(city)
	variations := []string{
		strings.TrimSpace(lower),
		strings.ReplaceAll(lower, " ", ""),
		strings.ReplaceAll(lower, "-", " "),
		strings.ReplaceAll(lower, "_", " "),
	}

	for _, variation := range variations {
		if coord, ok := cityCoordinates[variation]; ok {
			return coord, true
		}
	}
	return response_models.Coordinate{}, false
}
