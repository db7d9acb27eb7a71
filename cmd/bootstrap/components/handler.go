package components

import (
	"fleetrent/internal/handler"
	"fleetrent/internal/handler/api"
	"fleetrent/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRentalHandler,
		api.NewBookingRequestHandler,
		api.NewVehicleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
