package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/internal/planner/service"
	"github.com/assomusica/playroom/pkg/httpx"
	"github.com/assomusica/playroom/pkg/plannersdk"
	"github.com/assomusica/playroom/pkg/slogx"
)

type ReservationsHandler struct {
	ReservationService *service.ReservationService
	ScheduleService    *service.ScheduleService
}

// HandleCreate books a room slot
//
//	@Summary		Create a reservation
//	@Description	Books a room for a whole-hour slot starting between 09:00 and 23:00. The room must be free for the full interval.
//	@Tags			Reservations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		plannersdk.CreateReservationRequest	true	"Slot details"
//	@Success		201		{object}	plannersdk.ReservationInfo
//	@Failure		400		{object}	plannersdk.ErrorResponse	"Invalid slot"
//	@Failure		403		{object}	plannersdk.ErrorResponse	"Not a manager"
//	@Failure		409		{object}	plannersdk.ErrorResponse	"Room occupied (slot_conflict)"
//	@Security		BearerAuth
//	@Router			/v1/reservations [post].
func (h *ReservationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	var req plannersdk.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	reservation, err := h.ReservationService.Create(ctx, actor, service.CreateReservationInput{
		RoomID:        req.RoomID,
		StartAt:       req.StartAt,
		DurationHours: req.DurationHours,
		Activity:      req.Activity,
		Criterion:     domain.Criterion(req.Criterion),
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toReservationInfo(reservation))
}

// HandleUpdate moves or relabels a reservation
//
//	@Summary		Update a reservation
//	@Description	Changes start, duration or activity of an owned reservation. The new interval is re-checked for overlaps.
//	@Tags			Reservations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Reservation id"
//	@Param			request	body		plannersdk.UpdateReservationRequest	true	"New slot"
//	@Success		200		{object}	plannersdk.ReservationInfo
//	@Failure		403		{object}	plannersdk.ErrorResponse	"Not the owner"
//	@Failure		404		{object}	plannersdk.ErrorResponse
//	@Failure		409		{object}	plannersdk.ErrorResponse	"Room occupied (slot_conflict)"
//	@Security		BearerAuth
//	@Router			/v1/reservations/{id} [patch].
func (h *ReservationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	var req plannersdk.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	reservation, err := h.ReservationService.Update(ctx, actor, r.PathValue("id"), service.ReservationPatch{
		StartAt:       req.StartAt,
		DurationHours: req.DurationHours,
		Activity:      req.Activity,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toReservationInfo(reservation))
}

// HandleDelete cancels a reservation
//
//	@Summary		Delete a reservation
//	@Description	Cancels an owned reservation and removes every invite attached to it.
//	@Tags			Reservations
//	@Param			id	path	string	true	"Reservation id"
//	@Success		204
//	@Failure		403	{object}	plannersdk.ErrorResponse	"Not the owner"
//	@Failure		404	{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/reservations/{id} [delete].
func (h *ReservationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	if err := h.ReservationService.Delete(ctx, actor, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListMine lists the caller's reservations
//
//	@Summary		Own reservations
//	@Tags			Reservations
//	@Produce		json
//	@Success		200	{object}	plannersdk.ListReservationsResponse
//	@Failure		401	{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/reservations/mine [get].
func (h *ReservationsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	owned, err := h.ReservationService.ListOwned(ctx, actor)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toListReservationsResponse(owned))
}

// HandleWeek shows the weekly room planner
//
//	@Summary		Week view
//	@Description	Returns every reservation in the Monday-Sunday week containing the given date, optionally filtered by room.
//	@Tags			Reservations
//	@Produce		json
//	@Param			date	query		string	false	"Reference date (YYYY-MM-DD), default today"
//	@Param			room_id	query		string	false	"Restrict to one room"
//	@Success		200		{object}	plannersdk.ListReservationsResponse
//	@Failure		400		{object}	plannersdk.ErrorResponse	"Unparseable date"
//	@Security		BearerAuth
//	@Router			/v1/reservations [get].
func (h *ReservationsHandler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ref, err := parseDateParam(r, "date")
	if err != nil {
		writeBadRequest(w, "date must be YYYY-MM-DD")
		return
	}

	week, err := h.ScheduleService.ReservationsInWeek(ctx, r.URL.Query().Get("room_id"), ref)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toListReservationsResponse(week))
}

func toListReservationsResponse(details []domain.ReservationDetail) plannersdk.ListReservationsResponse {
	resp := plannersdk.ListReservationsResponse{
		Reservations: make([]plannersdk.ReservationInfo, len(details)),
	}
	for i, d := range details {
		resp.Reservations[i] = toReservationDetailInfo(d)
	}
	return resp
}

// parseDateParam reads a YYYY-MM-DD query parameter, defaulting to now in
// UTC when absent.
func parseDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}
