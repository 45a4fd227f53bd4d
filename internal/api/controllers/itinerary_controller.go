package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	accountService   services.AccountServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	accountService services.AccountServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		accountService:   accountService,
	}
}

var upgradePrompts = map[string]string{
	"pdf_export":      "Upgrade to Premium to export your itinerary as PDF",
	"calendar_sync":   "Sync your trip to Google Calendar with Premium",
	"offline_maps":    "Download offline maps with Premium subscription",
	"unlimited_trips": "Create unlimited trips with Premium",
}

func (ic *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input format. Please check your values.")
		return
	}

	req.Country = strings.TrimSpace(req.Country)
	req.City = strings.TrimSpace(req.City)

	if req.Days < 1 || req.Days > 30 {
		utils.RespondError(c, http.StatusBadRequest, "Days must be between 1 and 30")
		return
	}
	if req.People < 1 || req.People > 20 {
		utils.RespondError(c, http.StatusBadRequest, "People must be between 1 and 20")
		return
	}
	if req.Budget < 50 || req.Budget > 100000 {
		utils.RespondError(c, http.StatusBadRequest, "Budget must be between $50 and $100,000")
		return
	}
	if req.Country == "" || req.City == "" {
		utils.RespondError(c, http.StatusBadRequest, "Please fill in all fields with valid values")
		return
	}

	accountID := c.GetString("account_id")
	tier := c.GetString("tier")

	if accountID == "" && req.Days > services.FreeMaxDays {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":            "Sign in required for trips longer than 3 days",
			"upgrade_required": true,
			"message":          "Create a free account to plan longer trips, or upgrade to Premium for unlimited planning",
		})
		return
	}

	if accountID != "" && tier != services.TierPremium {
		if req.Days > services.FreeMaxDays {
			c.JSON(http.StatusForbidden, gin.H{
				"error":            "Free accounts are limited to 3-day trips",
				"upgrade_required": true,
				"message":          "Upgrade to Premium to plan trips up to 30 days",
			})
			return
		}
		if account, err := ic.accountService.GetAccount(c.Request.Context(), accountID); err == nil &&
			account.TripsThisMonth >= services.FreeMonthlyTrips {
			c.JSON(http.StatusForbidden, gin.H{
				"error":            "Monthly trip limit reached for free accounts",
				"upgrade_required": true,
				"message":          "Upgrade to Premium for unlimited trip planning",
			})
			return
		}
	}

	log.Printf("Generating itinerary for %s, %s - %d days, %d people, $%.2f",
		req.City, req.Country, req.Days, req.People, req.Budget)

	itinerary, err := ic.itineraryService.Generate(c.Request.Context(), req, accountID)
	if err != nil {
		if errors.Is(err, utils.ErrLocationNotFound) {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Sprintf("Could not find location information for %s, %s. Please try a different city or check spelling.", req.City, req.Country))
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	if accountID == "" || tier != services.TierPremium {
		itinerary.UpgradePrompts = upgradePrompts
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

func (ic *ItineraryController) ListTrips(c *gin.Context) {
	accountID := c.GetString("account_id")
	if accountID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	trips, err := ic.itineraryService.ListTrips(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}
