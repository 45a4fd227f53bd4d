package account_fx

import (
	"go.uber.org/fx"

	"tripcraft/internal/api/controllers"
	"tripcraft/internal/repositories"
	"tripcraft/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService,
	controllers.NewAccountController)

func provideAccountRepo() repositories.AccountRepository {
	return repositories.NewAccountRepository()
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
