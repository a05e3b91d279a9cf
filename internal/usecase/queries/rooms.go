package queries

import (
	"context"

	"room-pricing/internal/domain/catalog"
	"room-pricing/internal/infra"
	"room-pricing/internal/pkg/errs"
)

// RoomReadStore is the catalog read contract; both the CSV snapshot store and
// the Postgres store satisfy it.
type RoomReadStore interface {
	FindAll(ctx context.Context) ([]catalog.Room, error)
	FindByID(ctx context.Context, id string) (*catalog.Room, error)
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	GetRoom(ctx context.Context, id string) (*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views := make([]*RoomView, len(rooms))
	for i := range rooms {
		views[i] = toRoomView(&rooms[i])
	}
	return views, nil
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id string) (*RoomView, error) {
	room, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toRoomView(room), nil
}

func toRoomView(room *catalog.Room) *RoomView {
	view := &RoomView{
		ID:       room.ID,
		Category: room.Category,
		Name:     room.Name,
		Combos:   make([]ComboView, len(room.Pricing)),
	}
	for i, combo := range room.Pricing {
		view.Combos[i] = ComboView{
			Type:            string(combo.Type),
			Label:           combo.Label,
			WeekdayPriceVnd: combo.WeekdayPriceVnd,
			WeekendPriceVnd: combo.WeekendPriceVnd,
			WindowStart:     combo.Window.StartLocal,
			WindowEnd:       combo.Window.EndLocal,
		}
	}
	return view
}
