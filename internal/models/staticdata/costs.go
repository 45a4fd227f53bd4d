package staticdata

// Base per-person daily cost by budget tier, in USD.
var BaseDailyCosts = map[string]float64{
	"budget": 50,
	"mid":    100,
	"luxury": 200,
}

// Cost-of-travel adjustment by destination country. Accepts both ISO codes
// (resolved coordinates) and display names (user input).
var countryMultipliers = map[string]float64{
	"US":             1.2,
	"United States":  1.2,
	"GB":             1.1,
	"United Kingdom": 1.1,
	"DE":             0.9,
	"Germany":        0.9,
	"BS":             1.3,
	"Bahamas":        1.3,
}

func CountryMultiplier(country string) float64 {
	if m, ok := countryMultipliers[country]; ok {
		return m
	}
	return 1.0
}
