package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/skylinehq/landscapes/internal/service"
	"github.com/skylinehq/landscapes/internal/store"
	"github.com/skylinehq/landscapes/pkg/httpx"
	"github.com/skylinehq/landscapes/pkg/jwtx"
	"github.com/skylinehq/landscapes/pkg/slogx"

	_ "github.com/skylinehq/landscapes/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	accessVerifier  jwtx.Verifier
	refreshVerifier jwtx.Verifier
	buildVersion    string
	startTime       time.Time
	logger          *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	UserService      *service.UserService
	LandscapeService *service.LandscapeService
}

func NewRouter(
	accessVerifier, refreshVerifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:             http.NewServeMux(),
		accessVerifier:  accessVerifier,
		refreshVerifier: refreshVerifier,
		buildVersion:    buildVersion,
		startTime:       time.Now(),
		store:           st,
		logger:          logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerLandscapes()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Landscapes API
//	@version		0.1.0
//	@description	Authentication backend with JWT access/refresh token pairs and a landscape photo search proxy.
//	@description
//	@description				Tokens are signed with HS256. Access and refresh tokens use separate secrets;
//	@description				the refresh endpoint expects the refresh token as the bearer credential.
//
//	@contact.name				SkylineHQ Team
//	@contact.url				https://github.com/skylinehq/landscapes
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
//
//	@securityDefinitions.apikey	RefreshBearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT refresh token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /auth/register", registerHandler)

	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /auth/login", loginHandler)

	// Logout needs a valid access token; refresh needs the refresh token as
	// its bearer credential, so it runs behind the refresh verifier.
	logoutHandler := &LogoutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(logoutHandler,
			httpx.AuthnMiddleware(r.accessVerifier),
		),
	)

	refreshHandler := &RefreshHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /auth/refresh-token",
		httpx.Chain(refreshHandler,
			httpx.AuthnMiddleware(r.refreshVerifier),
		),
	)
}

func (r *Router) registerUsers() {
	h := &MeHandler{UserService: r.UserService}

	r.Mux.Handle("GET /users/me",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.accessVerifier),
		),
	)
}

func (r *Router) registerLandscapes() {
	h := &LandscapesHandler{LandscapeService: r.LandscapeService}

	r.Mux.Handle("GET /landscapes",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.accessVerifier),
		),
	)
}

func (r *Router) registerSystem() {
	// Liveness is unauthenticated so orchestrators can probe it; the full
	// health report sits behind an access token.
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))

	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(r.startTime, r.buildVersion, r.store),
			httpx.AuthnMiddleware(r.accessVerifier),
		),
	)
}
