package directory_fx

import (
	"go.uber.org/fx"

	"tripcraft/internal/api/controllers"
	"tripcraft/internal/services"
)

var Module = fx.Provide(
	services.NewDirectoryService,
	controllers.NewDirectoryController)
