package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
	u "github.com/chaedirdwiantara/bankSavingSystem-API/internal/utils"
)

const (
	serviceName       = "Bank Saving System API"
	serviceVersion    = "1.0.0"
	healthPingTimeout = 2 * time.Second
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

type serviceInfo struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type healthStatus struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *HealthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	u.WriteSuccess(w, http.StatusOK, serviceInfo{
		Name:    serviceName,
		Version: serviceVersion,
		Endpoints: map[string]string{
			"health":        "/api/health",
			"customers":     "/api/customers",
			"depositoTypes": "/api/deposito-types",
			"accounts":      "/api/accounts",
			"transactions":  "/api/transactions",
		},
	}, serviceName)
}

// Health reports 503 when the database does not answer a ping.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	now := time.Now().UTC()
	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("health check failed", "error", err.Error())
		u.WriteJSON(w, http.StatusServiceUnavailable, models.APIResponse{
			Success: false,
			Data: healthStatus{
				Status:    "unhealthy",
				Database:  "unreachable",
				Timestamp: now,
			},
			Error: "service unavailable",
		})
		return
	}

	u.WriteSuccess(w, http.StatusOK, healthStatus{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: now,
	}, serviceName+" is running")
}
