package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tripcraft/internal/models/request_models"
	"tripcraft/pkg/utils"
)

type TripParams struct {
	Days        int
	People      int
	Budget      float64
	Country     string
	City        string
	Preferences request_models.TripPreferences
}

type InsightServiceInterface interface {
	// MoneySavingTips always returns exactly six tips; the fixed fallback
	// list fills in whenever the text service under-delivers or fails.
	MoneySavingTips(ctx context.Context, params TripParams) []string

	// DestinationInsight returns a short destination paragraph, or a generic
	// description naming the city when the text service fails.
	DestinationInsight(ctx context.Context, params TripParams) string
}

const tipsCount = 6

// CostTier buckets the per-day spend. The "mid" spelling keys the cost
// tables; prompts use the reader-facing "mid-range".
func CostTier(days int, budget float64) string {
	dailyBudget := budget / float64(days)
	switch {
	case dailyBudget < 75:
		return "budget"
	case dailyBudget < 150:
		return "mid"
	default:
		return "luxury"
	}
}

func promptTier(days int, budget float64) string {
	tier := CostTier(days, budget)
	if tier == "mid" {
		return "mid-range"
	}
	return tier
}

func FallbackTips() []string {
	return []string{
		"🏠 Book accommodations in advance for better rates",
		"🚇 Use public transportation to save money",
		"🍽️ Try local street food for authentic flavors",
		"💳 Notify your bank before traveling",
		"📱 Download offline maps before you go",
		"🎫 Look for free walking tours and city passes",
	}
}

func fallbackInsight(city string) string {
	return fmt.Sprintf("Discover the unique charm of %s, a destination filled with rich culture, amazing food, and unforgettable experiences.", city)
}

type InsightService struct {
	generator utils.TextGenerator
}

func NewInsightService(generator utils.TextGenerator) InsightServiceInterface {
	return &InsightService{
		generator: generator,
	}
}

func (s *InsightService) MoneySavingTips(ctx context.Context, params TripParams) []string {
	prompt := s.buildTipsPrompt(params)

	system := "You are a local travel expert with insider knowledge. Give practical, specific advice that saves money and enhances the travel experience based on the user's preferences."
	raw, err := s.generator.Generate(ctx, system, prompt, 500, 0.7)
	if err != nil {
		log.Printf("Tips generation failed: %v", err)
		return FallbackTips()
	}

	tips := make([]string, 0, tipsCount)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 10 {
			tips = append(tips, line)
		}
	}

	for len(tips) < tipsCount {
		tips = append(tips, FallbackTips()...)
	}
	return tips[:tipsCount]
}

func (s *InsightService) buildTipsPrompt(params TripParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Give me 6 practical travel tips for visiting %s, %s on a %s budget for %d days with %d people.",
		params.City, params.Country, promptTier(params.Days, params.Budget), params.Days, params.People)

	prefs := params.Preferences
	if prefs.TravelStyle != "" {
		fmt.Fprintf(&b, "\nTravel style preference: %s", prefs.TravelStyle)
	}
	if prefs.Interests != "" {
		fmt.Fprintf(&b, "\nSpecial interests: %s", prefs.Interests)
	}
	if prefs.Dietary != "" {
		fmt.Fprintf(&b, "\nDietary restrictions: %s", prefs.Dietary)
	}
	if prefs.AIPrompt != "" {
		fmt.Fprintf(&b, "\nSpecial instructions: %s", prefs.AIPrompt)
	}

	b.WriteString(`

Focus on:
- Money-saving strategies specific to this destination and preferences
- Local food recommendations (considering dietary restrictions if mentioned)
- Transportation tips and cost-effective options
- Cultural insights and etiquette
- Activities matching the specified interests and travel style
- Safety advice and common tourist traps to avoid

Format each tip as a short, actionable sentence starting with an emoji. Keep each tip under 80 characters.`)

	return b.String()
}

func (s *InsightService) DestinationInsight(ctx context.Context, params TripParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Provide a brief, engaging overview of %s, %s for travelers. Include:
- What makes this destination special and unique
- Best time to visit and why
- One must-try local experience that tourists often miss`, params.City, params.Country)

	prefs := params.Preferences
	if prefs.TravelStyle != "" {
		fmt.Fprintf(&b, "\n- Focus on %s aspects", prefs.TravelStyle)
	}
	if prefs.Interests != "" {
		fmt.Fprintf(&b, "\n- Highlight opportunities for: %s", prefs.Interests)
	}
	if prefs.AIPrompt != "" {
		fmt.Fprintf(&b, "\n- Special consideration: %s", prefs.AIPrompt)
	}
	b.WriteString("\n\nKeep it under 120 words, inspiring, and informative.")

	system := "You are a travel writer creating inspiring yet informative destination descriptions. Focus on what makes each place unique and tailor to user preferences."
	insight, err := s.generator.Generate(ctx, system, b.String(), 200, 0.8)
	if err != nil {
		log.Printf("Destination insight failed: %v", err)
		return fallbackInsight(params.City)
	}

	return strings.TrimSpace(insight)
}
