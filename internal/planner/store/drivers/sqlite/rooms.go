package sqlite

import (
	"context"

	"github.com/assomusica/playroom/internal/planner/domain"
)

type roomsRepo struct {
	db dbtx
}

func (r *roomsRepo) GetRoomByID(ctx context.Context, id string) (domain.Room, error) {
	var room domain.Room
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, sector, capacity FROM rooms WHERE id = ?`, id).
		Scan(&room.ID, &room.Name, &room.Sector, &room.Capacity)
	if err != nil {
		return domain.Room{}, mapNotFound(err)
	}
	return room, nil
}

func (r *roomsRepo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, sector, capacity FROM rooms ORDER BY sector, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Sector, &room.Capacity); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}
