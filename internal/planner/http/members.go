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

type MembersHandler struct {
	MemberService *service.MemberService
}

// HandleRegister creates a member account
//
//	@Summary		Register a member
//	@Description	Creates a new association member with the learner role. Email is the member's identity and must be unique.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			request	body		plannersdk.RegisterRequest	true	"Member details"
//	@Success		201		{object}	plannersdk.MemberInfo		"Created member"
//	@Failure		400		{object}	plannersdk.ErrorResponse	"Invalid or duplicate details"
//	@Router			/v1/members [post].
func (h *MembersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req plannersdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	// Self-registration always creates a learner. Manager appointment is a
	// separate, out-of-band act; the public edge never takes a role.
	member, err := h.MemberService.Register(ctx, service.RegisterMemberInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		BirthDate: req.BirthDate,
		Role:      domain.RoleLearner,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toMemberInfo(member))
}

// HandleList returns the member directory
//
//	@Summary		List members
//	@Description	Returns every member, ordered by last name. Managers use this to pick invitees.
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	plannersdk.ListMembersResponse
//	@Failure		401	{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	members, err := h.MemberService.List(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	resp := plannersdk.ListMembersResponse{
		Members: make([]plannersdk.MemberInfo, len(members)),
	}
	for i, m := range members {
		resp.Members[i] = toMemberInfo(m)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleMe returns the caller's profile
//
//	@Summary		Own profile
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	plannersdk.MemberInfo
//	@Failure		401	{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/members/me [get].
func (h *MembersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	member, err := h.MemberService.Profile(ctx, actor.Email)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMemberInfo(member))
}

// HandleUpdateMe updates the caller's profile
//
//	@Summary		Update own profile
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			request	body	plannersdk.UpdateProfileRequest	true	"New profile data"
//	@Success		204
//	@Failure		400	{object}	plannersdk.ErrorResponse
//	@Failure		401	{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/members/me [patch].
func (h *MembersHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	var req plannersdk.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	if err := h.MemberService.UpdateProfile(ctx, actor, req.FirstName, req.LastName, req.BirthDate); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteMe removes the caller's account
//
//	@Summary		Delete own account
//	@Description	Removes the member and all their invites. Seats they had accepted are released. Reservations they own are kept.
//	@Tags			Members
//	@Success		204
//	@Failure		401	{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/members/me [delete].
func (h *MembersHandler) HandleDeleteMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	if err := h.MemberService.DeleteAccount(ctx, actor); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
