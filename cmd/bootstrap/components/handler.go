package components

import (
	"assistance-console/internal/handler"
	"assistance-console/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInterventionHandler,
		api.NewCalendarHandler,
		api.NewLookupHandler,
	),
	fx.Invoke(handler.NewRouter),
)
