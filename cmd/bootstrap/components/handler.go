package components

import (
	"splitpay/internal/handler"
	"splitpay/internal/handler/api"
	"splitpay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewClaimHandler,
		api.NewWebhookHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
