package http

import (
	"net/http"

	"github.com/assomusica/playroom/internal/planner/service"
	"github.com/assomusica/playroom/pkg/httpx"
	"github.com/assomusica/playroom/pkg/plannersdk"
	"github.com/assomusica/playroom/pkg/slogx"
)

type RoomsHandler struct {
	RoomService *service.RoomService
}

// HandleList lists the room catalog
//
//	@Summary		List rooms
//	@Description	Returns the fixed room catalog with sectors and capacities.
//	@Tags			Rooms
//	@Produce		json
//	@Success		200	{object}	plannersdk.ListRoomsResponse
//	@Failure		401	{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/rooms [get]
func (h *RoomsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	rooms, err := h.RoomService.List(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	resp := plannersdk.ListRoomsResponse{
		Rooms: make([]plannersdk.RoomInfo, len(rooms)),
	}
	for i, room := range rooms {
		resp.Rooms[i] = plannersdk.RoomInfo{
			ID:       room.ID,
			Name:     room.Name,
			Sector:   room.Sector,
			Capacity: room.Capacity,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet returns a single room
//
//	@Summary		Get room
//	@Description	Returns one room of the catalog by id.
//	@Tags			Rooms
//	@Produce		json
//	@Param			id	path		string	true	"Room ID"
//	@Success		200	{object}	plannersdk.RoomInfo
//	@Failure		401	{object}	plannersdk.ErrorResponse
//	@Failure		404	{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/rooms/{id} [get]
func (h *RoomsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	room, err := h.RoomService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, plannersdk.RoomInfo{
		ID:       room.ID,
		Name:     room.Name,
		Sector:   room.Sector,
		Capacity: room.Capacity,
	})
}
