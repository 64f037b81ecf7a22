package components

import (
	"car-rental-api/internal/handler"
	"car-rental-api/internal/handler/api"
	"car-rental-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSearchHandler,
		api.NewReservationHandler,
		api.NewCatalogHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	search *api.SearchHandler,
	reservation *api.ReservationHandler,
	catalog *api.CatalogHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Search:      search,
		Reservation: reservation,
		Catalog:     catalog,
	}
}
