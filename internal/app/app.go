package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "github.com/skylinehq/landscapes/internal/http"
	"github.com/skylinehq/landscapes/internal/service"
	"github.com/skylinehq/landscapes/internal/store"
	"github.com/skylinehq/landscapes/internal/store/drivers/sqlite"
	"github.com/skylinehq/landscapes/pkg/cryptox"
	"github.com/skylinehq/landscapes/pkg/jwtx"
	"github.com/skylinehq/landscapes/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the API service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db              store.Store
	accessSigner    jwtx.Signer
	refreshSigner   jwtx.Signer
	accessVerifier  jwtx.Verifier
	refreshVerifier jwtx.Verifier

	// Services
	authService      *service.AuthService
	userService      *service.UserService
	landscapeService *service.LandscapeService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "landscapes-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for secret hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initTokens(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("landscapes api starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down landscapes api...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("landscapes api stopped")
	return nil
}

// initTokens builds the signer and verifier pairs from the two configured
// secrets. LoadConfig already rejected empty secrets, so failures here mean
// the config was constructed by hand.
func (app *Application) initTokens() error {
	var err error

	if app.accessSigner, err = jwtx.NewSignerHS256(app.cfg.AuthSecret); err != nil {
		return fmt.Errorf("access token signer: %w", err)
	}
	if app.refreshSigner, err = jwtx.NewSignerHS256(app.cfg.RefreshTokenSecret); err != nil {
		return fmt.Errorf("refresh token signer: %w", err)
	}
	if app.accessVerifier, err = jwtx.NewVerifierHS256(app.cfg.AuthSecret, app.cfg.Issuer); err != nil {
		return fmt.Errorf("access token verifier: %w", err)
	}
	if app.refreshVerifier, err = jwtx.NewVerifierHS256(app.cfg.RefreshTokenSecret, app.cfg.Issuer); err != nil {
		return fmt.Errorf("refresh token verifier: %w", err)
	}

	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
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

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:         app.db,
		AccessSigner:  app.accessSigner,
		RefreshSigner: app.refreshSigner,
		Issuer:        app.cfg.Issuer,
		AccessTTL:     app.cfg.AccessTokenTTL,
		RefreshTTL:    app.cfg.RefreshTokenTTL,
	}

	app.userService = &service.UserService{Store: app.db}

	app.landscapeService = &service.LandscapeService{
		APIKey:  app.cfg.PixabayAPIKey,
		BaseURL: app.cfg.LandscapeBaseURL,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	app.router = httpapi.NewRouter(
		app.accessVerifier,
		app.refreshVerifier,
		BuildVersion,
		app.db,
		app.logger,
	)
	app.router.AuthService = app.authService
	app.router.UserService = app.userService
	app.router.LandscapeService = app.landscapeService
	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: app.router,
	}
}
