package components

import (
	"room-pricing/internal/domain/pricing"
	"room-pricing/internal/pkg/config"
	"room-pricing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) *pricing.Calculator {
		return pricing.NewCalculator(pricing.HourlyRates{
			WeekdayVnd: cfg.Pricing.HourlyWeekdayVnd,
			WeekendVnd: cfg.Pricing.HourlyWeekendVnd,
		})
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewRoomQueries,
	),
)
