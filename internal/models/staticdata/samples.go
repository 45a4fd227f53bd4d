package staticdata

import "tripcraft/internal/models/response_models"

// Sample sets substituted when every place search came back empty, so an
// itinerary is never generated without content.

func SampleActivities() []response_models.PlaceCandidate {
	return []response_models.PlaceCandidate{
		{Name: "Local Beach", Rating: 4.5, ReviewsCount: 100, Vicinity: "Waterfront area", Types: []string{"tourist_attraction"}},
		{Name: "Historic Downtown", Rating: 4.2, ReviewsCount: 85, Vicinity: "City center", Types: []string{"tourist_attraction"}},
		{Name: "Local Market", Rating: 4.0, ReviewsCount: 60, Vicinity: "Market district", Types: []string{"tourist_attraction"}},
	}
}

func SampleRestaurants() []response_models.PlaceCandidate {
	return []response_models.PlaceCandidate{
		{Name: "Local Seafood Restaurant", Rating: 4.3, ReviewsCount: 120, Vicinity: "Harbor area", PriceLevel: 2},
		{Name: "Traditional Cafe", Rating: 4.1, ReviewsCount: 90, Vicinity: "Main street", PriceLevel: 1},
		{Name: "Beachside Grill", Rating: 4.4, ReviewsCount: 150, Vicinity: "Beach front", PriceLevel: 3},
	}
}
