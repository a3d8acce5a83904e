package components

import (
	"hotel-backend/internal/handler"
	"hotel-backend/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewRoomHandler,
		api.NewClientHandler,
		api.NewReservationHandler,
		func(
			health *api.HealthHandler,
			rooms *api.RoomHandler,
			clients *api.ClientHandler,
			reservations *api.ReservationHandler,
		) handler.Handlers {
			return handler.Handlers{
				Health:       health,
				Rooms:        rooms,
				Clients:      clients,
				Reservations: reservations,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
