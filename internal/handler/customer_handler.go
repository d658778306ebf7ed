package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/service"
	u "github.com/chaedirdwiantara/bankSavingSystem-API/internal/utils"
)

type CustomerHandler struct {
	customerService service.CustomerService
	logger          *slog.Logger
}

func NewCustomerHandler(customerService service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/customers", h.ListCustomers).Methods(http.MethodGet)
	router.HandleFunc("/customers", h.CreateCustomer).Methods(http.MethodPost)
	router.HandleFunc("/customers/{id}", h.GetCustomer).Methods(http.MethodGet)
	router.HandleFunc("/customers/{id}", h.UpdateCustomer).Methods(http.MethodPut)
	router.HandleFunc("/customers/{id}", h.DeleteCustomer).Methods(http.MethodDelete)
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.ListCustomers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleServiceError(w, h.logger, err, "list customers")
		return
	}
	u.WriteSuccess(w, http.StatusOK, customers, "")
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerService.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, h.logger, err, "get customer")
		return
	}
	u.WriteSuccess(w, http.StatusOK, customer, "")
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if !decodeRequest(w, r, h.logger, &req, "create customer") {
		return
	}

	customer, err := h.customerService.CreateCustomer(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create customer")
		return
	}
	u.WriteSuccess(w, http.StatusCreated, customer, "Customer created successfully")
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCustomerRequest
	if !decodeRequest(w, r, h.logger, &req, "update customer") {
		return
	}

	customer, err := h.customerService.UpdateCustomer(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update customer")
		return
	}
	u.WriteSuccess(w, http.StatusOK, customer, "Customer updated successfully")
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.customerService.DeleteCustomer(r.Context(), mux.Vars(r)["id"]); err != nil {
		handleServiceError(w, h.logger, err, "delete customer")
		return
	}
	u.WriteSuccess(w, http.StatusOK, nil, "Customer deleted successfully")
}
