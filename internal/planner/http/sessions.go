package http

import (
	"encoding/json"
	"net/http"

	"github.com/assomusica/playroom/internal/planner/service"
	"github.com/assomusica/playroom/pkg/httpx"
	"github.com/assomusica/playroom/pkg/plannersdk"
	"github.com/assomusica/playroom/pkg/slogx"
	"github.com/assomusica/playroom/pkg/tokenx"
)

type SessionsHandler struct {
	MemberService *service.MemberService
	Signer        *tokenx.Signer
}

// HandleLogin exchanges credentials for a bearer token
//
//	@Summary		Log in
//	@Description	Verifies email and password and issues the bearer token used by every authenticated endpoint.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		plannersdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	plannersdk.TokenResponse
//	@Failure		403		{object}	plannersdk.ErrorResponse	"Bad credentials"
//	@Router			/v1/sessions [post].
func (h *SessionsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req plannersdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	member, err := h.MemberService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	token, err := h.Signer.Sign(member.Email, string(member.Role))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, plannersdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.Signer.TTL.Seconds()),
	})
}
