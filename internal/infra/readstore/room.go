package readstore

import (
	"context"
	"errors"

	"room-pricing/internal/domain/catalog"
	"room-pricing/internal/domain/pricing"
	"room-pricing/internal/infra"

	"github.com/jackc/pgx/v5"
)

// DBTX is the querying surface shared by pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const selectRooms = `
SELECT id, category, name
FROM rooms
ORDER BY id`

const selectRoomByID = `
SELECT id, category, name
FROM rooms
WHERE id = $1`

const selectCombosByRoomIDs = `
SELECT room_id, combo_type, label,
       weekday_price_vnd, weekend_price_vnd,
       window_kind, window_start, window_end, crosses_midnight, duration_hours
FROM room_combos
WHERE room_id = ANY($1)
ORDER BY room_id, position`

// RoomReadStore serves the room catalog out of Postgres. It satisfies the
// same read-side contract as the CSV snapshot store.
type RoomReadStore struct {
	db DBTX
}

func NewRoomReadStore(db DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (s *RoomReadStore) FindAll(ctx context.Context) ([]catalog.Room, error) {
	rows, err := s.db.Query(ctx, selectRooms)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	var rooms []catalog.Room
	for rows.Next() {
		var room catalog.Room
		if err := rows.Scan(&room.ID, &room.Category, &room.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	if err := s.attachCombos(ctx, rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomReadStore) FindByID(ctx context.Context, id string) (*catalog.Room, error) {
	var room catalog.Room
	err := s.db.QueryRow(ctx, selectRoomByID, id).Scan(&room.ID, &room.Category, &room.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	rooms := []catalog.Room{room}
	if err := s.attachCombos(ctx, rooms); err != nil {
		return nil, err
	}
	return &rooms[0], nil
}

func (s *RoomReadStore) attachCombos(ctx context.Context, rooms []catalog.Room) error {
	if len(rooms) == 0 {
		return nil
	}

	ids := make([]string, len(rooms))
	byID := make(map[string]*catalog.Room, len(rooms))
	for i := range rooms {
		ids[i] = rooms[i].ID
		byID[rooms[i].ID] = &rooms[i]
	}

	rows, err := s.db.Query(ctx, selectCombosByRoomIDs, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query room combos", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			roomID     string
			comboType  string
			windowKind string
			combo      pricing.ComboPricing
		)
		if err := rows.Scan(
			&roomID,
			&comboType,
			&combo.Label,
			&combo.WeekdayPriceVnd,
			&combo.WeekendPriceVnd,
			&windowKind,
			&combo.Window.StartLocal,
			&combo.Window.EndLocal,
			&combo.Window.CrossesMidnight,
			&combo.Window.DurationHours,
		); err != nil {
			return infra.WrapRepoErr("failed to scan combo row", err)
		}
		combo.RoomID = roomID
		combo.Type = pricing.ComboType(comboType)
		combo.Window.Kind = pricing.WindowKind(windowKind)

		room, ok := byID[roomID]
		if !ok {
			continue
		}
		if combo.IsInert() {
			continue
		}
		room.Pricing = append(room.Pricing, combo)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate combo rows", err)
	}
	return nil
}
