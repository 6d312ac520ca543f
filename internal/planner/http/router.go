package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/assomusica/playroom/internal/planner/service"
	"github.com/assomusica/playroom/internal/planner/store"
	"github.com/assomusica/playroom/pkg/httpx"
	"github.com/assomusica/playroom/pkg/slogx"
	"github.com/assomusica/playroom/pkg/tokenx"

	_ "github.com/assomusica/playroom/api/planner" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *tokenx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	MemberService      *service.MemberService
	RoomService        *service.RoomService
	ReservationService *service.ReservationService
	InvitationService  *service.InvitationService
	ScheduleService    *service.ScheduleService
}

func NewRouter(signer *tokenx.Signer, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSessions()
	r.registerMembers()
	r.registerRooms()
	r.registerReservations()
	r.registerInvites()
	r.registerCommitments()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Room Planner API
//	@version		0.1.0
//	@description	Rehearsal room reservation and invitation engine for a music association.
//	@description	Managers book rooms in whole-hour slots and invite members; members accept
//	@description	or decline within room capacity and their own schedule.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token issued by POST /v1/sessions. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSessions() {
	h := &SessionsHandler{MemberService: r.MemberService, Signer: r.signer}

	// Credential check, so strict limit by IP against brute force.
	r.Mux.Handle("POST /v1/sessions",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MemberService: r.MemberService}

	// Open signup endpoint, strict limit by IP.
	r.Mux.Handle("POST /v1/members",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/members",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/members/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/members/me",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateMe),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/members/me",
		httpx.Chain(http.HandlerFunc(h.HandleDeleteMe),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRooms() {
	h := &RoomsHandler{RoomService: r.RoomService}

	r.Mux.Handle("GET /v1/rooms",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/rooms/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerReservations() {
	h := &ReservationsHandler{
		ReservationService: r.ReservationService,
		ScheduleService:    r.ScheduleService,
	}

	// Booking mutations are manager-only.
	r.Mux.Handle("POST /v1/reservations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireRole("manager"),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/reservations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireRole("manager"),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/reservations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireRole("manager"),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/reservations/mine",
		httpx.Chain(http.HandlerFunc(h.HandleListMine),
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireRole("manager"),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)

	// The week view is readable by every member.
	r.Mux.Handle("GET /v1/reservations",
		httpx.Chain(http.HandlerFunc(h.HandleWeek),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InvitationService: r.InvitationService}

	r.Mux.Handle("POST /v1/reservations/{id}/invites",
		httpx.Chain(http.HandlerFunc(h.HandleDistribute),
			httpx.AuthnMiddleware(r.signer),
			httpx.RequireRole("manager"),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/invites",
		httpx.Chain(http.HandlerFunc(h.HandleListPending),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /v1/invites/{reservation_id}/respond",
		httpx.Chain(http.HandlerFunc(h.HandleRespond),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/invites/{reservation_id}/withdraw",
		httpx.Chain(http.HandlerFunc(h.HandleWithdraw),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCommitments() {
	h := &CommitmentsHandler{ScheduleService: r.ScheduleService}

	r.Mux.Handle("GET /v1/commitments",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
