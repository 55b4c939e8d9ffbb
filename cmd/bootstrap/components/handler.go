package components

import (
	"leaveflow/internal/handler"
	"leaveflow/internal/handler/api"
	"leaveflow/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVacationHandler,
		api.NewManagerHandler,
		api.NewHRHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	vacation *api.VacationHandler,
	manager *api.ManagerHandler,
	hr *api.HRHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Vacation: vacation,
		Manager:  manager,
		HR:       hr,
		Admin:    admin,
	}
}
