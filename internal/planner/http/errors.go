package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/assomusica/playroom/internal/planner/service"
	"github.com/assomusica/playroom/pkg/httpx"
	"github.com/assomusica/playroom/pkg/plannersdk"
)

// writeServiceError maps the service error kinds onto the HTTP surface.
// Unrecognized errors become opaque 500s; their detail goes to the log only.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, service.ErrValidation):
		status, code = http.StatusBadRequest, plannersdk.ErrorCodeInvalidRequest
	case errors.Is(err, service.ErrNotAllowed):
		status, code = http.StatusForbidden, plannersdk.ErrorCodeForbidden
	case errors.Is(err, service.ErrNotFound):
		status, code = http.StatusNotFound, plannersdk.ErrorCodeNotFound
	case errors.Is(err, service.ErrSlotConflict):
		status, code = http.StatusConflict, plannersdk.ErrorCodeSlotConflict
	case errors.Is(err, service.ErrRoomFull):
		status, code = http.StatusConflict, plannersdk.ErrorCodeRoomFull
	case errors.Is(err, service.ErrScheduleConflict):
		status, code = http.StatusConflict, plannersdk.ErrorCodeScheduleConflict
	default:
		log.Error("internal error", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, plannersdk.ErrorResponse{
			Error:            plannersdk.ErrorCodeServerError,
			ErrorDescription: "internal server error",
		})
		return
	}

	httpx.WriteJSON(w, status, plannersdk.ErrorResponse{
		Error:            code,
		ErrorDescription: err.Error(),
	})
}

// writeBadRequest is for malformed JSON and unparseable parameters caught at
// the edge, before any service call.
func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, plannersdk.ErrorResponse{
		Error:            plannersdk.ErrorCodeInvalidRequest,
		ErrorDescription: desc,
	})
}
