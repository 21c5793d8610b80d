package components

import (
	"marketplace-core/internal/handler"
	"marketplace-core/internal/handler/api"
	"marketplace-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewQuotationHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(b *api.BookingHandler, q *api.QuotationHandler, u *api.UserHandler) handler.Handlers {
	return handler.Handlers{
		Booking:   b,
		Quotation: q,
		User:      u,
	}
}
