package bootstrap

import (
	"context"
	"log/slog"

	"room-pricing/internal/infra/catalogcsv"
	"room-pricing/internal/infra/db"
	"room-pricing/internal/infra/readstore"
	"room-pricing/internal/pkg/config"
	"room-pricing/internal/pkg/errs"
	"room-pricing/internal/usecase/queries"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewRoomReadStore,
	),
)

// NewRoomReadStore builds the catalog store the configuration asks for:
// a one-shot CSV snapshot held in memory, or a live Postgres read store.
func NewRoomReadStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (queries.RoomReadStore, error) {
	if cfg.Catalog.Source == "postgres" {
		pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("room catalog backed by postgres", "host", cfg.DB.Host, "db", cfg.DB.DBName)
		return readstore.NewRoomReadStore(pool), nil
	}

	rooms, err := catalogcsv.LoadFile(cfg.Catalog.CSVPath)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, errs.Mark(errs.New("pricing CSV contains no rooms"), errs.ErrCatalogNotReady)
	}
	logger.Info("room catalog loaded from CSV", "path", cfg.Catalog.CSVPath, "rooms", len(rooms))
	return readstore.NewMemoryRoomStore(rooms), nil
}
