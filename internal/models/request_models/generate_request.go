package request_models

// GenerateItineraryRequest mirrors the /generate body. The preference fields
// are free text and only ever interpolated into enrichment prompts.
type GenerateItineraryRequest struct {
	Days      int     `json:"days"`
	People    int     `json:"people"`
	Budget    float64 `json:"budget"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	StartDate string  `json:"startDate"`

	TravelStyle string `json:"travelStyle"`
	Interests   string `json:"interests"`
	Dietary     string `json:"dietary"`
	AIPrompt    string `json:"aiPrompt"`
}

type TripPreferences struct {
	TravelStyle string `json:"travelStyle"`
	Interests   string `json:"interests"`
	Dietary     string `json:"dietary"`
	AIPrompt    string `json:"aiPrompt"`
}

func (r *GenerateItineraryRequest) Preferences() TripPreferences {
	return TripPreferences{
		TravelStyle: r.TravelStyle,
		Interests:   r.Interests,
		Dietary:     r.Dietary,
		AIPrompt:    r.AIPrompt,
	}
}

func (p TripPreferences) Any() bool {
	return p.TravelStyle != "" || p.Interests != "" || p.Dietary != "" || p.AIPrompt != ""
}
