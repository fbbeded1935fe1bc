package components

import (
	"flex-reservations/internal/infra/readstore"
	"flex-reservations/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Reservation (read side only; records are written by an external collaborator)
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)
