package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	u "github.com/chaedirdwiantara/bankSavingSystem-API/internal/utils"
)

// RouteRegistrar is implemented by every resource handler.
type RouteRegistrar interface {
	RegisterRoutes(router *mux.Router)
}

// NewRouter mounts the root info route, the API docs and every registrar
// under /api. CORS wraps the whole router so preflight requests are answered
// before route matching.
func NewRouter(logger *slog.Logger, health *HealthHandler, registrars ...RouteRegistrar) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", health.Root).Methods(http.MethodGet)
	NewDocsHandler().RegisterRoutes(router)

	api := router.PathPrefix("/api").Subrouter()
	health.RegisterRoutes(api)
	for _, registrar := range registrars {
		registrar.RegisterRoutes(api)
	}

	// mux only runs router middleware on matched routes
	logging := LoggingMiddleware(logger)
	router.NotFoundHandler = logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.WriteError(w, http.StatusNotFound, "route not found", r.Method+" "+r.URL.Path)
	}))
	router.MethodNotAllowedHandler = logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.WriteError(w, http.StatusMethodNotAllowed, "method not allowed", r.Method+" "+r.URL.Path)
	}))

	router.Use(logging, RecoveryMiddleware(logger))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return cors(router)
}
