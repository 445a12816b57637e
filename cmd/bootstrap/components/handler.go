package components

import (
	"lane-booking/internal/handler"
	"lane-booking/internal/handler/api"
	"lane-booking/internal/handler/middleware"
	"lane-booking/internal/pkg/config"
	"lane-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewReservationHandler,
		api.NewClientHandler,
		NewPaymentHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewPaymentHandler(cmds commands.LifecycleCommands, cfg config.Config) *api.PaymentHandler {
	return api.NewPaymentHandler(cmds, cfg.Payment.WebhookSecret)
}

func NewHandlers(
	booking *api.BookingHandler,
	reservation *api.ReservationHandler,
	client *api.ClientHandler,
	payment *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking:     booking,
		Reservation: reservation,
		Client:      client,
		Payment:     payment,
	}
}
