package plannersdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Machine-readable error codes returned by the planner API.
const (
	ErrorCodeInvalidRequest   = "invalid_request"
	ErrorCodeUnauthorized     = "unauthorized"
	ErrorCodeForbidden        = "forbidden"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeSlotConflict     = "slot_conflict"
	ErrorCodeRoomFull         = "room_full"
	ErrorCodeScheduleConflict = "schedule_conflict"
	ErrorCodeServerError      = "server_error"
)

// ErrorResponse is the JSON error body used by every planner endpoint.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// APIError represents an error response from the planner API. It implements
// the error interface and carries the HTTP status and machine-readable code.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsConflict reports whether the error is one of the three booking conflicts.
func (e *APIError) IsConflict() bool {
	switch e.Code {
	case ErrorCodeSlotConflict, ErrorCodeRoomFull, ErrorCodeScheduleConflict:
		return true
	}
	return false
}

// decodeError turns a non-2xx response body into an *APIError. Bodies that
// are not the expected JSON shape still produce a usable error.
func decodeError(resp *http.Response) error {
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected response %d", resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        body.Error,
		Description: body.ErrorDescription,
	}
}
