package services

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/internal/models/staticdata"
	"tripcraft/internal/repositories"
	"tripcraft/pkg/utils"
)

type ItineraryServiceInterface interface {
	// Generate runs the full assembly pipeline. accountID is empty for
	// anonymous callers; authenticated generations are recorded.
	Generate(ctx context.Context, req request_models.GenerateItineraryRequest, accountID string) (*response_models.ItineraryResponse, error)

	ListTrips(ctx context.Context, accountID string) ([]response_models.TripSummary, error)
}

type ItineraryService struct {
	geocoder GeocodingServiceInterface
	weather  WeatherServiceInterface
	places   PlacesServiceInterface
	insights InsightServiceInterface

	tripRepo    repositories.TripRepository
	accountRepo repositories.AccountRepository
}

func NewItineraryService(
	geocoder GeocodingServiceInterface,
	weather WeatherServiceInterface,
	places PlacesServiceInterface,
	insights InsightServiceInterface,
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		geocoder:    geocoder,
		weather:     weather,
		places:      places,
		insights:    insights,
		tripRepo:    tripRepo,
		accountRepo: accountRepo,
	}
}

const upstreamCallTimeout = 20 * time.Second

func (s *ItineraryService) Generate(ctx context.Context, req request_models.GenerateItineraryRequest, accountID string) (*response_models.ItineraryResponse, error) {
	coord, err := s.geocoder.Resolve(ctx, req.City, req.Country)
	if err != nil {
		return nil, err
	}

	params := TripParams{
		Days:        req.Days,
		People:      req.People,
		Budget:      req.Budget,
		Country:     req.Country,
		City:        req.City,
		Preferences: req.Preferences(),
	}

	// The remaining upstream calls are independent of each other; each owns
	// its timeout and degrades to its fallback on failure.
	var (
		weather     *response_models.WeatherInfo
		attractions []response_models.PlaceCandidate
		restaurants []response_models.PlaceCandidate
		museums     []response_models.PlaceCandidate
		hotels      []response_models.PlaceCandidate
		tips        []string
		insight     string
	)

	var wg sync.WaitGroup

	searchCategory := func(dst *[]response_models.PlaceCandidate, category PlaceCategory) {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, upstreamCallTimeout)
		defer cancel()

		list, err := s.places.SearchNearby(cctx, coord.Latitude, coord.Longitude, category, DefaultSearchRadius)
		if err != nil {
			if errors.Is(err, utils.ErrProviderUnavailable) {
				log.Printf("Places provider not configured, returning no %s results", category)
			} else {
				log.Printf("Error searching %s: %v", category, err)
			}
			return
		}
		*dst = list
	}

	wg.Add(4)
	go searchCategory(&attractions, CategoryAttraction)
	go searchCategory(&restaurants, CategoryRestaurant)
	go searchCategory(&museums, CategoryMuseum)
	go searchCategory(&hotels, CategoryLodging)

	wg.Add(3)
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, upstreamCallTimeout)
		defer cancel()
		weather = s.weather.Current(cctx, coord.Latitude, coord.Longitude)
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, upstreamCallTimeout)
		defer cancel()
		tips = s.insights.MoneySavingTips(cctx, params)
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, upstreamCallTimeout)
		defer cancel()
		insight = s.insights.DestinationInsight(cctx, params)
	}()

	wg.Wait()

	log.Printf("Found %d attractions, %d restaurants, %d museums, %d hotels near %s",
		len(attractions), len(restaurants), len(museums), len(hotels), req.City)

	result := allocate(req, coord, weather, attractions, restaurants, museums, hotels, tips, insight)

	if accountID != "" {
		s.recordTrip(ctx, accountID, req, result)
	}

	return result, nil
}

// allocate distributes ranked candidates across days without repeats and
// prices each day. Pure given its inputs aside from the calendar dates.
func allocate(
	req request_models.GenerateItineraryRequest,
	coord *response_models.Coordinate,
	weather *response_models.WeatherInfo,
	attractions, restaurants, museums, hotels []response_models.PlaceCandidate,
	tips []string,
	insight string,
) *response_models.ItineraryResponse {

	attractionsFound := len(attractions)
	restaurantsFound := len(restaurants)
	museumsFound := len(museums)

	// Never produce an empty itinerary: when every search came back empty,
	// fall back to the sample sets.
	if len(attractions) == 0 && len(restaurants) == 0 {
		log.Printf("No places found via API, creating sample itinerary")
		attractions = staticdata.SampleActivities()
		restaurants = staticdata.SampleRestaurants()
		attractionsFound = len(attractions)
		restaurantsFound = len(restaurants)
	}

	activityPool := make([]response_models.PlaceCandidate, 0, len(attractions)+len(museums))
	activityPool = append(activityPool, attractions...)
	activityPool = append(activityPool, museums...)
	sortByRatingDesc(activityPool)

	restaurantPool := append([]response_models.PlaceCandidate(nil), restaurants...)
	sortByRatingDesc(restaurantPool)

	hotelPool := append([]response_models.PlaceCandidate(nil), hotels...)
	sortByRatingDesc(hotelPool)

	tier := CostTier(req.Days, req.Budget)

	usedActivities := make(map[string]bool)
	usedRestaurants := make(map[string]bool)

	days := make([]response_models.DayPlan, 0, req.Days)
	for day := 1; day <= req.Days; day++ {
		dayActivities := make([]response_models.ActivityEntry, 0, 2)
		for _, candidate := range activityPool {
			if len(dayActivities) == 2 {
				break
			}
			if usedActivities[candidate.Name] {
				continue
			}
			usedActivities[candidate.Name] = true
			dayActivities = append(dayActivities, response_models.ActivityEntry{
				Name:         candidate.Name,
				Rating:       candidate.Rating,
				ReviewsCount: candidate.ReviewsCount,
				Address:      candidate.Vicinity,
				Types:        candidate.Types,
				BookingLinks: utils.BookingLinks(candidate.Name, req.City),
			})
		}

		var restaurant *response_models.RestaurantEntry
		for _, candidate := range restaurantPool {
			if usedRestaurants[candidate.Name] {
				continue
			}
			usedRestaurants[candidate.Name] = true
			restaurant = &response_models.RestaurantEntry{
				Name:         candidate.Name,
				Rating:       candidate.Rating,
				ReviewsCount: candidate.ReviewsCount,
				PriceLevel:   candidate.PriceLevel,
				Address:      candidate.Vicinity,
			}
			break
		}

		days = append(days, response_models.DayPlan{
			Day: day,
			// Day dates run from today regardless of the requested start
			// date; only check-in/check-out honor it.
			Date:          time.Now().AddDate(0, 0, day-1).Format("2006-01-02"),
			Activities:    dayActivities,
			Restaurant:    restaurant,
			EstimatedCost: estimateDailyCost(coord.Country, tier, req.People),
		})
	}

	var totalCost float64
	for _, d := range days {
		totalCost += d.EstimatedCost
	}
	totalCost = round2(totalCost)

	budgetStatus := "Within Budget"
	if totalCost > req.Budget {
		budgetStatus = "Over Budget"
	}

	checkIn := time.Now().AddDate(0, 0, 30)
	if req.StartDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			checkIn = parsed
		} else {
			log.Printf("Ignoring unparseable start date %q", req.StartDate)
		}
	}
	checkOut := checkIn.AddDate(0, 0, req.Days)

	if len(hotelPool) > 10 {
		hotelPool = hotelPool[:10]
	}

	return &response_models.ItineraryResponse{
		Destination:        coord.Name + ", " + coord.Country,
		LocationInfo:       *coord,
		WeatherInfo:        weather,
		AIPowered:          true,
		AIInsights:         insight,
		PreferencesUsed:    preferencesSummary(req.Preferences()),
		TotalDays:          req.Days,
		TotalPeople:        req.People,
		Budget:             req.Budget,
		DailyBudget:        round2(req.Budget / float64(req.Days)),
		BudgetCategory:     titleCase(tier),
		MoneySavingTips:    tips,
		Itinerary:          days,
		TotalEstimatedCost: totalCost,
		BudgetStatus:       budgetStatus,
		AttractionsFound:   attractionsFound,
		RestaurantsFound:   restaurantsFound,
		MuseumsFound:       museumsFound,
		Hotels:             hotelPool,
		CheckInDate:        checkIn.Format("2006-01-02"),
		CheckOutDate:       checkOut.Format("2006-01-02"),
	}
}

// estimateDailyCost prices one day for the whole party. Parties above two get
// the historical people*0.85 group multiplier; intentionally super-linear.
func estimateDailyCost(country, tier string, people int) float64 {
	cost := staticdata.BaseDailyCosts[tier] * staticdata.CountryMultiplier(country)
	if people > 2 {
		cost *= float64(people) * 0.85
	}
	return round2(cost)
}

func sortByRatingDesc(places []response_models.PlaceCandidate) {
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Rating > places[j].Rating
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func preferencesSummary(prefs request_models.TripPreferences) string {
	if !prefs.Any() {
		return ""
	}

	parts := make([]string, 0, 4)
	if prefs.TravelStyle != "" {
		parts = append(parts, "Style: "+prefs.TravelStyle)
	}
	if prefs.Interests != "" {
		parts = append(parts, "Interests: "+prefs.Interests)
	}
	if prefs.Dietary != "" {
		parts = append(parts, "Dietary: "+prefs.Dietary)
	}
	if prefs.AIPrompt != "" {
		note := prefs.AIPrompt
		if len(note) > 50 {
			note = note[:50]
		}
		parts = append(parts, "Special: "+note+"...")
	}
	return strings.Join(parts, " | ")
}

func (s *ItineraryService) recordTrip(ctx context.Context, accountID string, req request_models.GenerateItineraryRequest, itinerary *response_models.ItineraryResponse) {
	trip := &repositories.Trip{
		ID:          uuid.New(),
		AccountID:   accountID,
		Destination: req.City + ", " + req.Country,
		Days:        req.Days,
		Budget:      req.Budget,
		Preferences: req.Preferences(),
		Itinerary:   itinerary,
		CreatedAt:   time.Now(),
	}

	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		log.Printf("Error recording trip: %v", err)
		return
	}
	if err := s.accountRepo.IncrementTripCounters(ctx, accountID); err != nil {
		log.Printf("Error updating trip counters: %v", err)
	}
}

func (s *ItineraryService) ListTrips(ctx context.Context, accountID string) ([]response_models.TripSummary, error) {
	trips, err := s.tripRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrStorageError
	}

	summaries := make([]response_models.TripSummary, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, response_models.TripSummary{
			ID:          trip.ID.String(),
			Destination: trip.Destination,
			Days:        trip.Days,
			Budget:      trip.Budget,
			CreatedAt:   trip.CreatedAt.Format(time.RFC3339),
		})
	}
	return summaries, nil
}
