package bootstrap

import (
	"room-pricing/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	CatalogModule,
	components.UseCaseModule,
	components.HandlerModule,
)
