package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type fakeItineraryService struct {
	response *response_models.ItineraryResponse
	err      error

	lastAccountID string
}

func (f *fakeItineraryService) Generate(ctx context.Context, req request_models.GenerateItineraryRequest, accountID string) (*response_models.ItineraryResponse, error) {
	f.lastAccountID = accountID
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeItineraryService) ListTrips(ctx context.Context, accountID string) ([]response_models.TripSummary, error) {
	return nil, nil
}

type fakeAccountService struct {
	account *response_models.AccountResponse
}

func (f *fakeAccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	return nil
}

func (f *fakeAccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	return nil, nil
}

func (f *fakeAccountService) GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error) {
	if f.account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return f.account, nil
}

func generateRequest(t *testing.T, body map[string]any, identity func(c *gin.Context)) (*httptest.ResponseRecorder, *fakeItineraryService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &fakeItineraryService{response: &response_models.ItineraryResponse{Destination: "Miami, US"}}
	controller := NewItineraryController(svc, &fakeAccountService{account: &response_models.AccountResponse{Tier: services.TierFree}})

	router := gin.New()
	router.POST("/generate", func(c *gin.Context) {
		if identity != nil {
			identity(c)
		}
		controller.Generate(c)
	})

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder, svc
}

func validBody() map[string]any {
	return map[string]any{
		"days":    3,
		"people":  2,
		"budget":  500,
		"country": "United States",
		"city":    "Miami",
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(body map[string]any)
		message string
	}{
		{
			name:    "days too high",
			mutate:  func(b map[string]any) { b["days"] = 31 },
			message: "Days must be between 1 and 30",
		},
		{
			name:    "days too low",
			mutate:  func(b map[string]any) { b["days"] = 0 },
			message: "Days must be between 1 and 30",
		},
		{
			name:    "too many people",
			mutate:  func(b map[string]any) { b["people"] = 21 },
			message: "People must be between 1 and 20",
		},
		{
			name:    "budget below minimum",
			mutate:  func(b map[string]any) { b["budget"] = 49 },
			message: "Budget must be between $50 and $100,000",
		},
		{
			name:    "budget above maximum",
			mutate:  func(b map[string]any) { b["budget"] = 100001 },
			message: "Budget must be between $50 and $100,000",
		},
		{
			name:    "blank city",
			mutate:  func(b map[string]any) { b["city"] = "   " },
			message: "Please fill in all fields with valid values",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validBody()
			tt.mutate(body)

			recorder, _ := generateRequest(t, body, nil)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var resp utils.APIResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestGenerateMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewItineraryController(&fakeItineraryService{}, &fakeAccountService{})

	router := gin.New()
	router.POST("/generate", controller.Generate)

	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewReader([]byte(`{"days": "three"}`)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid input format. Please check your values.", resp.Message)
}

func TestGenerateAnonymousLongTrip(t *testing.T) {
	body := validBody()
	body["days"] = 10

	recorder, svc := generateRequest(t, body, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Empty(t, svc.lastAccountID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["upgrade_required"])
	assert.Equal(t, "Sign in required for trips longer than 3 days", payload["error"])
}

func TestGenerateFreeTierLimits(t *testing.T) {
	asFreeUser := func(c *gin.Context) {
		c.Set("account_id", "acct-1")
		c.Set("tier", services.TierFree)
	}

	t.Run("long trip forbidden", func(t *testing.T) {
		body := validBody()
		body["days"] = 10

		recorder, _ := generateRequest(t, body, asFreeUser)
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
		assert.Equal(t, true, payload["upgrade_required"])
		assert.Equal(t, "Free accounts are limited to 3-day trips", payload["error"])
	})

	t.Run("monthly quota enforced", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		svc := &fakeItineraryService{response: &response_models.ItineraryResponse{}}
		controller := NewItineraryController(svc, &fakeAccountService{
			account: &response_models.AccountResponse{Tier: services.TierFree, TripsThisMonth: 3},
		})

		router := gin.New()
		router.POST("/generate", func(c *gin.Context) {
			asFreeUser(c)
			controller.Generate(c)
		})

		payload, _ := json.Marshal(validBody())
		req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)

		var out map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
		assert.Equal(t, "Monthly trip limit reached for free accounts", out["error"])
	})
}

func TestGenerateLocationNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewItineraryController(&fakeItineraryService{err: utils.ErrLocationNotFound}, &fakeAccountService{})

	router := gin.New()
	router.POST("/generate", controller.Generate)

	body := validBody()
	body["city"] = "Nowhereville"
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "Could not find location information for Nowhereville, United States. Please try a different city or check spelling.", resp.Message)
}

func TestGenerateSuccess(t *testing.T) {
	t.Run("anonymous gets upgrade prompts", func(t *testing.T) {
		recorder, svc := generateRequest(t, validBody(), nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, svc.lastAccountID)

		var resp struct {
			Status string                             `json:"status"`
			Data   response_models.ItineraryResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "Miami, US", resp.Data.Destination)
		assert.Contains(t, resp.Data.UpgradePrompts, "pdf_export")
	})

	t.Run("premium gets no upgrade prompts", func(t *testing.T) {
		recorder, svc := generateRequest(t, validBody(), func(c *gin.Context) {
			c.Set("account_id", "acct-2")
			c.Set("tier", services.TierPremium)
		})
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "acct-2", svc.lastAccountID)

		var resp struct {
			Data response_models.ItineraryResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data.UpgradePrompts)
	})
}

func TestListTripsRequiresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewItineraryController(&fakeItineraryService{}, &fakeAccountService{})

	router := gin.New()
	router.GET("/api/trips", controller.ListTrips)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
