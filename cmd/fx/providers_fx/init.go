package providers_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

var Module = fx.Provide(
	ProvideGeocoder,
	ProvideWeatherClient,
	ProvidePlacesClient,
	ProvideTextGenerator)

func ProvideGeocoder() services.GeocodingServiceInterface {
	key := os.Getenv("OPENWEATHER_API_KEY")
	if key == "" {
		log.Printf("OPENWEATHER_API_KEY not set, geocoding uses the static city table")
	}
	return services.NewOpenWeatherGeocoder(key)
}

func ProvideWeatherClient() services.WeatherServiceInterface {
	key := os.Getenv("OPENWEATHER_API_KEY")
	if key == "" {
		log.Printf("OPENWEATHER_API_KEY not set, itineraries omit weather")
	}
	return services.NewOpenWeatherClient(key)
}

func ProvidePlacesClient() services.PlacesServiceInterface {
	key := os.Getenv("GOOGLE_PLACES_API_KEY")
	if key == "" {
		log.Printf("GOOGLE_PLACES_API_KEY not set, place search returns sample data")
	}
	return services.NewGooglePlacesClient(key)
}

// ProvideTextGenerator picks the generative text provider from the
// environment. A missing credential degrades to fallback content rather than
// failing startup.
func ProvideTextGenerator() (utils.TextGenerator, error) {
	provider := getEnvWithDefault("TEXTGEN_PROVIDER", "openai")

	log.Printf("Initializing %s text generation client", provider)

	switch strings.ToLower(provider) {
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			log.Printf("OPENAI_API_KEY not set, AI tips and insights use fallback text")
		}
		return utils.NewOpenAITextClient(key, os.Getenv("OPENAI_MODEL")), nil
	case "gemini":
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			log.Printf("GEMINI_API_KEY not set, AI tips and insights use fallback text")
		}
		return utils.NewGeminiTextClient(key, os.Getenv("GEMINI_MODEL"))
	default:
		return nil, fmt.Errorf("unsupported text provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
