package components

import (
	"flex-reservations/internal/handler"
	"flex-reservations/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
