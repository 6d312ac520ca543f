package http

import (
	"net/http"

	"github.com/assomusica/playroom/internal/planner/service"
	"github.com/assomusica/playroom/pkg/httpx"
	"github.com/assomusica/playroom/pkg/plannersdk"
	"github.com/assomusica/playroom/pkg/slogx"
)

type CommitmentsHandler struct {
	ScheduleService *service.ScheduleService
}

// ServeHTTP lists the caller's accepted slots for a week
//
//	@Summary		Weekly commitments
//	@Description	Returns the caller's accepted invites whose reservation falls in the Monday-Sunday week containing the given date.
//	@Tags			Commitments
//	@Produce		json
//	@Param			date	query		string	false	"Reference date (YYYY-MM-DD), default today"
//	@Success		200		{object}	plannersdk.ListCommitmentsResponse
//	@Failure		400		{object}	plannersdk.ErrorResponse	"Unparseable date"
//	@Failure		401		{object}	plannersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/commitments [get].
func (h *CommitmentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromRequest(r)
	if !ok {
		writeBadRequest(w, "missing acting member")
		return
	}

	ref, err := parseDateParam(r, "date")
	if err != nil {
		writeBadRequest(w, "date must be YYYY-MM-DD")
		return
	}

	commitments, err := h.ScheduleService.CommitmentsInWeek(ctx, actor.Email, ref)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	resp := plannersdk.ListCommitmentsResponse{
		Commitments: make([]plannersdk.InviteInfo, len(commitments)),
	}
	for i, c := range commitments {
		resp.Commitments[i] = toCommitmentInfo(c)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
