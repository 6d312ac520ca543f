package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/assomusica/playroom/internal/planner/http"
	"github.com/assomusica/playroom/internal/planner/service"
	"github.com/assomusica/playroom/internal/planner/store"
	"github.com/assomusica/playroom/internal/planner/store/drivers/sqlite"
	"github.com/assomusica/playroom/pkg/slogx"
	"github.com/assomusica/playroom/pkg/tokenx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application wires the planner together: store, services, HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *tokenx.Signer

	memberService       *service.MemberService
	roomService         *service.RoomService
	reservationService  *service.ReservationService
	invitationService   *service.InvitationService
	scheduleService     *service.ScheduleService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "planner",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initSigner(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("planner starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown stops the HTTP server, the housekeeping sweeper and the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down planner...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("planner stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initSigner() error {
	secret := app.cfg.TokenSecret
	if secret == "" {
		if app.cfg.Env == "prod" {
			return errors.New("PLANNER_TOKEN_SECRET is required in prod")
		}

		// Dev convenience: random per-process secret, tokens die with the
		// process.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("failed to generate dev token secret: %w", err)
		}
		secret = hex.EncodeToString(buf)
		app.logger.Warn("PLANNER_TOKEN_SECRET not set, using an ephemeral secret")
	}

	app.signer = &tokenx.Signer{
		Secret: []byte(secret),
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.TokenTTL,
	}
	return nil
}

func (app *Application) initServices() {
	locks := service.NewKeyedLocks()

	app.memberService = &service.MemberService{Store: app.db, Locks: locks}
	app.roomService = &service.RoomService{Store: app.db}
	app.reservationService = &service.ReservationService{Store: app.db, Locks: locks}
	app.invitationService = &service.InvitationService{Store: app.db, Locks: locks}
	app.scheduleService = &service.ScheduleService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.InviteRetention,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.signer, BuildVersion, app.db, app.logger)

	router.MemberService = app.memberService
	router.RoomService = app.roomService
	router.ReservationService = app.reservationService
	router.InvitationService = app.invitationService
	router.ScheduleService = app.scheduleService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
