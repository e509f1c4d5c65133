package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/odonlab/cms/internal/cms/service"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/odonlab/cms/pkg/httpx"
	"github.com/odonlab/cms/pkg/jwtx"
	"github.com/odonlab/cms/pkg/slogx"

	_ "github.com/odonlab/cms/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	PageService     *service.PageService
	ProjectService  *service.ProjectService
	SettingsService *service.SettingsService
	MediaService    *service.MediaService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSAllowAll(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPages()
	r.registerProjects()
	r.registerSettings()
	r.registerMedia()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Odon Lab CMS API
//	@version		0.1.0
//	@description	Backend for the Odon Lab site: page and project content,
//	@description	site settings, and media uploads, guarded by short-lived
//	@description	HS256 bearer tokens.
//
//	@contact.name				Odon Lab
//	@contact.url				https://github.com/odonlab/cms
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authenticated wraps h with the bearer-token guard.
func (r *Router) authenticated(h http.Handler) http.Handler {
	return httpx.Chain(h,
		RequireAuthenticated(r.verifier, r.AuthService),
	)
}

// admin wraps h with the bearer-token guard plus the admin check.
func (r *Router) admin(h http.Handler) http.Handler {
	return httpx.Chain(h,
		RequireAuthenticated(r.verifier, r.AuthService),
		RequireAdmin(),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /api/auth/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /api/auth/login", http.HandlerFunc(h.HandleLogin))
	r.Mux.Handle("GET /api/auth/me", r.authenticated(http.HandlerFunc(h.HandleMe)))
}

func (r *Router) registerPages() {
	h := &PagesHandler{PageService: r.PageService}

	r.Mux.Handle("GET /api/pages", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /api/pages/{name}", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("POST /api/pages", r.admin(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /api/pages/{name}", r.admin(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /api/pages/{name}", r.admin(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: r.ProjectService}

	r.Mux.Handle("GET /api/projects", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /api/projects/{id}", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("POST /api/projects", r.admin(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /api/projects/{id}", r.admin(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /api/projects/{id}", r.admin(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerSettings() {
	h := &SettingsHandler{SettingsService: r.SettingsService}

	r.Mux.Handle("GET /api/settings", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("PUT /api/settings", r.admin(http.HandlerFunc(h.HandleUpdate)))
}

func (r *Router) registerMedia() {
	h := &MediaHandler{MediaService: r.MediaService}

	r.Mux.Handle("POST /api/media/upload", r.admin(http.HandlerFunc(h.HandleUpload)))
	r.Mux.Handle("GET /api/media", r.admin(http.HandlerFunc(h.HandleList)))
	// Downloads stay public so stored images can be hotlinked by the site.
	r.Mux.Handle("GET /api/media/{id}", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("DELETE /api/media/{id}", r.admin(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
