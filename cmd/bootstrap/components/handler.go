package components

import (
	"room-pricing/internal/handler"
	"room-pricing/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewRoomHandler,
	),
	fx.Invoke(handler.NewRouter),
)
