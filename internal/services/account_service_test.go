package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/repositories"
	"tripcraft/pkg/utils"
)

func TestAccountLifecycle(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAccountService(repositories.NewAccountRepository())
	ctx := context.Background()

	signUp := request_models.SignUpRequest{
		DisplayName: "Taylor",
		Email:       "taylor@example.com",
		Password:    "correct horse battery",
	}
	require.NoError(t, svc.CreateAccount(ctx, signUp))

	t.Run("duplicate email rejected", func(t *testing.T) {
		err := svc.CreateAccount(ctx, signUp)
		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	})

	t.Run("login issues a valid token", func(t *testing.T) {
		resp, err := svc.Login(ctx, request_models.LoginRequest{Email: signUp.Email, Password: signUp.Password})
		require.NoError(t, err)
		assert.Equal(t, "Taylor", resp.Account.Name)
		assert.Equal(t, TierFree, resp.Account.Tier)

		claims, err := utils.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.Account.ID, claims.AccountID)
		assert.Equal(t, TierFree, claims.Tier)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, request_models.LoginRequest{Email: signUp.Email, Password: "nope"})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, request_models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})

	t.Run("get account round trip", func(t *testing.T) {
		resp, err := svc.Login(ctx, request_models.LoginRequest{Email: signUp.Email, Password: signUp.Password})
		require.NoError(t, err)

		fetched, err := svc.GetAccount(ctx, resp.Account.ID)
		require.NoError(t, err)
		assert.Equal(t, signUp.Email, fetched.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetAccount(ctx, "9df7e3f8-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}
