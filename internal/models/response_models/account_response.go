package response_models

type AccountResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Tier           string `json:"tier"`
	TripsThisMonth int    `json:"trips_this_month"`
	TotalTrips     int    `json:"total_trips"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

type TripSummary struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	Days        int     `json:"days"`
	Budget      float64 `json:"budget"`
	CreatedAt   string  `json:"created_at"`
}
