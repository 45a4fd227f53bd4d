package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/internal/repositories"
	"tripcraft/pkg/utils"
)

// Subscription tiers and their planning limits.
const (
	TierFree    = "free"
	TierPremium = "premium"

	FreeMaxDays      = 3
	FreeMonthlyTrips = 3
	PremiumMaxDays   = 30
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrStorageError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrStorageError
	}

	account := &repositories.Account{
		ID:           uuid.New(),
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Tier:         TierFree,
		CreatedAt:    time.Now(),
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrStorageError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrStorageError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Tier)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: toAccountResponse(account),
	}, nil
}

func (a *AccountService) GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrStorageError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

func toAccountResponse(account *repositories.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:             account.ID.String(),
		Name:           account.Name,
		Email:          account.Email,
		Tier:           account.Tier,
		TripsThisMonth: account.TripsThisMonth,
		TotalTrips:     account.TotalTrips,
	}
}
