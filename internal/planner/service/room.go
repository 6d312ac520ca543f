package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/internal/planner/store"
)

// RoomService exposes the read-only room catalog.
type RoomService struct {
	Store store.Store
}

// List returns the catalog ordered by sector then name.
func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	return s.Store.Rooms().ListRooms(ctx)
}

// Get returns a single room.
func (s *RoomService) Get(ctx context.Context, id string) (domain.Room, error) {
	room, err := s.Store.Rooms().GetRoomByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Room{}, fmt.Errorf("%w: room %s", ErrNotFound, id)
		}
		return domain.Room{}, err
	}
	return room, nil
}
