package response_models

// Coordinate is the resolved destination produced once per request by the
// geocoding service and treated as immutable afterwards.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	State     string  `json:"state"`
}

type WeatherInfo struct {
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Humidity    int    `json:"humidity"`
	FeelsLike   int    `json:"feels_like"`
}

// PlaceCandidate is a provider result normalized into the common shape the
// allocator works with. Name doubles as the deduplication key.
type PlaceCandidate struct {
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"user_ratings_total"`
	PriceLevel   int      `json:"price_level"`
	Vicinity     string   `json:"vicinity"`
	PlaceID      string   `json:"place_id"`
	MapsURL      string   `json:"google_maps_url"`
	Types        []string `json:"types"`
}

type ActivityEntry struct {
	Name         string            `json:"name"`
	Rating       float64           `json:"rating"`
	ReviewsCount int               `json:"reviews_count"`
	Address      string            `json:"address"`
	Types        []string          `json:"types"`
	BookingLinks map[string]string `json:"booking_links"`
}

type RestaurantEntry struct {
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews_count"`
	PriceLevel   int     `json:"price_level"`
	Address      string  `json:"address"`
}

type DayPlan struct {
	Day           int              `json:"day"`
	Date          string           `json:"date"`
	Activities    []ActivityEntry  `json:"activities"`
	Restaurant    *RestaurantEntry `json:"restaurant"`
	EstimatedCost float64          `json:"estimated_cost"`
}

type ItineraryResponse struct {
	Destination        string            `json:"destination"`
	LocationInfo       Coordinate        `json:"location_info"`
	WeatherInfo        *WeatherInfo      `json:"weather_info"`
	AIPowered          bool              `json:"ai_powered"`
	AIInsights         string            `json:"ai_insights"`
	PreferencesUsed    string            `json:"preferences_used"`
	TotalDays          int               `json:"total_days"`
	TotalPeople        int               `json:"total_people"`
	Budget             float64           `json:"budget"`
	DailyBudget        float64           `json:"daily_budget"`
	BudgetCategory     string            `json:"budget_category"`
	MoneySavingTips    []string          `json:"money_saving_tips"`
	Itinerary          []DayPlan         `json:"itinerary"`
	TotalEstimatedCost float64           `json:"total_estimated_cost"`
	BudgetStatus       string            `json:"budget_status"`
	AttractionsFound   int               `json:"attractions_found"`
	RestaurantsFound   int               `json:"restaurants_found"`
	MuseumsFound       int               `json:"museums_found"`
	Hotels             []PlaceCandidate  `json:"hotels"`
	CheckInDate        string            `json:"check_in_date"`
	CheckOutDate       string            `json:"check_out_date"`
	UpgradePrompts     map[string]string `json:"upgrade_prompts,omitempty"`
}
