package readstore

import (
	"context"

	"room-pricing/internal/domain/catalog"
	"room-pricing/internal/infra"
	"room-pricing/internal/pkg/errs"
)

// MemoryRoomStore serves a catalog snapshot loaded once at startup (the CSV
// path). Lookups never mutate the snapshot, so it is safe for concurrent use.
type MemoryRoomStore struct {
	rooms []catalog.Room
	byID  map[string]*catalog.Room
}

func NewMemoryRoomStore(rooms []catalog.Room) *MemoryRoomStore {
	byID := make(map[string]*catalog.Room, len(rooms))
	for i := range rooms {
		byID[rooms[i].ID] = &rooms[i]
	}
	return &MemoryRoomStore{rooms: rooms, byID: byID}
}

func (s *MemoryRoomStore) FindAll(_ context.Context) ([]catalog.Room, error) {
	return s.rooms, nil
}

func (s *MemoryRoomStore) FindByID(_ context.Context, id string) (*catalog.Room, error) {
	room, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", errs.ErrRoomNotFound, infra.KindNotFound)
	}
	return room, nil
}
