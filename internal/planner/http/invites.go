package http

import (
	"encoding/json"
	"net/http"

	"github.com/assomusica/playroom/internal/planner/domain"
	"github.com/assomusica/playroom/internal/planner/service"
	"github.com/assomusica/playroom/pkg/httpx"
	"github.com/assomusica/playroom/pkg/plannersdk"
	"github.com/assomusica/playroom/pkg/slogx"
)

type InvitesHandler struct {
	InvitationService *service.InvitationService
}

// HandleDistribute fans out invites for a reservation
//
//	@Summary		Distribute invites
//	@Description	Creates pending invites for the listed members. Idempotent: members already invited keep their current state. Unknown emails are skipped.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Reservation id"
//	@Param			request	body		plannersdk.DistributeRequest	true	"Member emails"
//	@Success		200		{object}	plannersdk.DistributeResponse
//	@Failure		403		{object}	plannersdk.ErrorResponse	"Not the owner"
//	@Failure		404		{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/reservations/{id}/invites [post].
func (h *InvitesHandler) HandleDistribute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	var req plannersdk.DistributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	created, err := h.InvitationService.Distribute(ctx, actor, r.PathValue("id"), req.Emails)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, plannersdk.DistributeResponse{Created: created})
}

// HandleListPending lists the caller's open invites
//
//	@Summary		Pending invites
//	@Description	Returns the caller's unanswered invites for upcoming reservations, soonest first.
//	@Tags			Invites
//	@Produce		json
//	@Success		200	{object}	plannersdk.ListInvitesResponse
//	@Failure		401	{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InvitesHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	invites, err := h.InvitationService.ListPending(ctx, actor)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	resp := plannersdk.ListInvitesResponse{
		Invites: make([]plannersdk.InviteInfo, len(invites)),
	}
	for i, inv := range invites {
		resp.Invites[i] = toInviteInfo(inv)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleRespond answers a pending invite
//
//	@Summary		Respond to an invite
//	@Description	Accepts or declines a pending invite. Accepting fails when the room is full (room_full) or when the member already holds an overlapping accepted invite (schedule_conflict). Declining requires a reason.
//	@Tags			Invites
//	@Accept			json
//	@Param			reservation_id	path	string					true	"Reservation id"
//	@Param			request			body	plannersdk.RespondRequest	true	"Answer"
//	@Success		204
//	@Failure		400	{object}	plannersdk.ErrorResponse	"Already answered, bad answer or missing reason"
//	@Failure		404	{object}	plannersdk.ErrorResponse	"No such invite"
//	@Failure		409	{object}	plannersdk.ErrorResponse	"room_full or schedule_conflict"
//	@Security		BearerAuth
//	@Router			/v1/invites/{reservation_id}/respond [post].
func (h *InvitesHandler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	var req plannersdk.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	err := h.InvitationService.Respond(ctx, actor, r.PathValue("reservation_id"),
		domain.Response(req.Answer), req.Reason)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleWithdraw takes back an accepted invite
//
//	@Summary		Withdraw from a reservation
//	@Description	Returns an accepted invite to pending and frees the seat. Withdrawing a pending invite does nothing; a declined invite stays declined.
//	@Tags			Invites
//	@Param			reservation_id	path	string	true	"Reservation id"
//	@Success		204
//	@Failure		404	{object}	plannersdk.ErrorResponse	"No such invite"
//	@Security		BearerAuth
//	@Router			/v1/invites/{reservation_id}/withdraw [post].
func (h *InvitesHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	if err := h.InvitationService.Withdraw(ctx, actor, r.PathValue("reservation_id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
