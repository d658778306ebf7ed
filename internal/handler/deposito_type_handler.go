package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/service"
	u "github.com/chaedirdwiantara/bankSavingSystem-API/internal/utils"
)

type DepositoTypeHandler struct {
	depositoTypeService service.DepositoTypeService
	logger              *slog.Logger
}

func NewDepositoTypeHandler(depositoTypeService service.DepositoTypeService, logger *slog.Logger) *DepositoTypeHandler {
	return &DepositoTypeHandler{
		depositoTypeService: depositoTypeService,
		logger:              logger,
	}
}

func (h *DepositoTypeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/deposito-types", h.ListDepositoTypes).Methods(http.MethodGet)
	router.HandleFunc("/deposito-types", h.CreateDepositoType).Methods(http.MethodPost)
	router.HandleFunc("/deposito-types/{id}", h.GetDepositoType).Methods(http.MethodGet)
	router.HandleFunc("/deposito-types/{id}", h.UpdateDepositoType).Methods(http.MethodPut)
	router.HandleFunc("/deposito-types/{id}", h.DeleteDepositoType).Methods(http.MethodDelete)
}

func (h *DepositoTypeHandler) ListDepositoTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.depositoTypeService.ListDepositoTypes(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "list deposito types")
		return
	}
	u.WriteSuccess(w, http.StatusOK, types, "")
}

func (h *DepositoTypeHandler) GetDepositoType(w http.ResponseWriter, r *http.Request) {
	depositoType, err := h.depositoTypeService.GetDepositoType(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, h.logger, err, "get deposito type")
		return
	}
	u.WriteSuccess(w, http.StatusOK, depositoType, "")
}

func (h *DepositoTypeHandler) CreateDepositoType(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDepositoTypeRequest
	if !decodeRequest(w, r, h.logger, &req, "create deposito type") {
		return
	}

	depositoType, err := h.depositoTypeService.CreateDepositoType(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create deposito type")
		return
	}
	u.WriteSuccess(w, http.StatusCreated, depositoType, "Deposito type created successfully")
}

func (h *DepositoTypeHandler) UpdateDepositoType(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateDepositoTypeRequest
	if !decodeRequest(w, r, h.logger, &req, "update deposito type") {
		return
	}

	depositoType, err := h.depositoTypeService.UpdateDepositoType(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update deposito type")
		return
	}
	u.WriteSuccess(w, http.StatusOK, depositoType, "Deposito type updated successfully")
}

func (h *DepositoTypeHandler) DeleteDepositoType(w http.ResponseWriter, r *http.Request) {
	if err := h.depositoTypeService.DeleteDepositoType(r.Context(), mux.Vars(r)["id"]); err != nil {
		handleServiceError(w, h.logger, err, "delete deposito type")
		return
	}
	u.WriteSuccess(w, http.StatusOK, nil, "Deposito type deleted successfully")
}
