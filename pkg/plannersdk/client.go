// Package plannersdk is a typed Go client for the room planner API. It is
// used by the planner's own end-to-end tests and by external tooling.
package plannersdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a planner instance. The zero Token makes unauthenticated
// calls; WithToken derives an authenticated client sharing the transport.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that sends the bearer token on
// every request.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Register creates a member account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (MemberInfo, error) {
	var out MemberInfo
	err := c.do(ctx, http.MethodPost, "/v1/members", req, &out)
	return out, err
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/v1/sessions", LoginRequest{Email: email, Password: password}, &out)
	return out, err
}

// Me returns the caller's own profile.
func (c *Client) Me(ctx context.Context) (MemberInfo, error) {
	var out MemberInfo
	err := c.do(ctx, http.MethodGet, "/v1/members/me", nil, &out)
	return out, err
}

// UpdateMe changes the caller's profile.
func (c *Client) UpdateMe(ctx context.Context, req UpdateProfileRequest) error {
	return c.do(ctx, http.MethodPatch, "/v1/members/me", req, nil)
}

// DeleteMe removes the caller's account and every invite they hold.
func (c *Client) DeleteMe(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/v1/members/me", nil, nil)
}

// ListMembers returns the member directory.
func (c *Client) ListMembers(ctx context.Context) (ListMembersResponse, error) {
	var out ListMembersResponse
	err := c.do(ctx, http.MethodGet, "/v1/members", nil, &out)
	return out, err
}

// ListRooms returns the room catalog.
func (c *Client) ListRooms(ctx context.Context) (ListRoomsResponse, error) {
	var out ListRoomsResponse
	err := c.do(ctx, http.MethodGet, "/v1/rooms", nil, &out)
	return out, err
}

// GetRoom returns one room of the catalog.
func (c *Client) GetRoom(ctx context.Context, id string) (RoomInfo, error) {
	var out RoomInfo
	err := c.do(ctx, http.MethodGet, "/v1/rooms/"+url.PathEscape(id), nil, &out)
	return out, err
}

// CreateReservation books a room slot. Manager only.
func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (ReservationInfo, error) {
	var out ReservationInfo
	err := c.do(ctx, http.MethodPost, "/v1/reservations", req, &out)
	return out, err
}

// UpdateReservation moves or relabels an owned reservation.
func (c *Client) UpdateReservation(ctx context.Context, id string, req UpdateReservationRequest) (ReservationInfo, error) {
	var out ReservationInfo
	err := c.do(ctx, http.MethodPatch, "/v1/reservations/"+url.PathEscape(id), req, &out)
	return out, err
}

// DeleteReservation cancels an owned reservation and its invites.
func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/reservations/"+url.PathEscape(id), nil, nil)
}

// ListMyReservations returns the caller's reservations, newest first.
func (c *Client) ListMyReservations(ctx context.Context) (ListReservationsResponse, error) {
	var out ListReservationsResponse
	err := c.do(ctx, http.MethodGet, "/v1/reservations/mine", nil, &out)
	return out, err
}

// WeekReservations returns the week view around date. Empty roomID means
// all rooms.
func (c *Client) WeekReservations(ctx context.Context, roomID string, date time.Time) (ListReservationsResponse, error) {
	q := url.Values{}
	q.Set("date", date.Format("2006-01-02"))
	if roomID != "" {
		q.Set("room_id", roomID)
	}

	var out ListReservationsResponse
	err := c.do(ctx, http.MethodGet, "/v1/reservations?"+q.Encode(), nil, &out)
	return out, err
}

// Distribute fans out invites for an owned reservation.
func (c *Client) Distribute(ctx context.Context, reservationID string, emails []string) (DistributeResponse, error) {
	var out DistributeResponse
	err := c.do(ctx, http.MethodPost,
		"/v1/reservations/"+url.PathEscape(reservationID)+"/invites",
		DistributeRequest{Emails: emails}, &out)
	return out, err
}

// ListPendingInvites returns the caller's open invites, soonest first.
func (c *Client) ListPendingInvites(ctx context.Context) (ListInvitesResponse, error) {
	var out ListInvitesResponse
	err := c.do(ctx, http.MethodGet, "/v1/invites", nil, &out)
	return out, err
}

// Respond answers a pending invite with accepted or declined.
func (c *Client) Respond(ctx context.Context, reservationID, answer, reason string) error {
	return c.do(ctx, http.MethodPost,
		"/v1/invites/"+url.PathEscape(reservationID)+"/respond",
		RespondRequest{Answer: answer, Reason: reason}, nil)
}

// Withdraw takes back an accepted invite.
func (c *Client) Withdraw(ctx context.Context, reservationID string) error {
	return c.do(ctx, http.MethodPost,
		"/v1/invites/"+url.PathEscape(reservationID)+"/withdraw", nil, nil)
}

// WeekCommitments returns the caller's accepted slots for the week around
// date.
func (c *Client) WeekCommitments(ctx context.Context, date time.Time) (ListCommitmentsResponse, error) {
	q := url.Values{}
	q.Set("date", date.Format("2006-01-02"))

	var out ListCommitmentsResponse
	err := c.do(ctx, http.MethodGet, "/v1/commitments?"+q.Encode(), nil, &out)
	return out, err
}

// Livez calls the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out)
	return out, err
}

// Readyz calls the readiness probe.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}

// do performs one JSON round trip. A nil in sends no body, a nil out
// discards the response body.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
