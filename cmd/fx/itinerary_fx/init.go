package itinerary_fx

import (
	"go.uber.org/fx"

	"tripcraft/internal/api/controllers"
	"tripcraft/internal/repositories"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

var Module = fx.Provide(
	provideTripRepo,
	provideInsightService,
	provideItineraryService,
	controllers.NewItineraryController)

func provideTripRepo() repositories.TripRepository {
	return repositories.NewTripRepository()
}

func provideInsightService(generator utils.TextGenerator) services.InsightServiceInterface {
	return services.NewInsightService(generator)
}

func provideItineraryService(
	geocoder services.GeocodingServiceInterface,
	weather services.WeatherServiceInterface,
	places services.PlacesServiceInterface,
	insights services.InsightServiceInterface,
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(geocoder, weather, places, insights, tripRepo, accountRepo)
}
