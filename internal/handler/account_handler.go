package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/service"
	u "github.com/chaedirdwiantara/bankSavingSystem-API/internal/utils"
)

type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

func NewAccountHandler(accountService service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

func (h *AccountHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/accounts", h.ListAccounts).Methods(http.MethodGet)
	router.HandleFunc("/accounts", h.CreateAccount).Methods(http.MethodPost)
	router.HandleFunc("/accounts/{id}", h.GetAccount).Methods(http.MethodGet)
	router.HandleFunc("/accounts/{id}", h.DeleteAccount).Methods(http.MethodDelete)
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if !decodeRequest(w, r, h.logger, &req, "create account") {
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create account")
		return
	}

	u.WriteSuccess(w, http.StatusCreated, account, "Account created successfully")
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountService.GetAccount(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, h.logger, err, "get account")
		return
	}

	u.WriteSuccess(w, http.StatusOK, account, "")
}

// ListAccounts optionally narrows the result with ?customer_id=.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context(), r.URL.Query().Get("customer_id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "list accounts")
		return
	}

	u.WriteSuccess(w, http.StatusOK, accounts, "")
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.accountService.DeleteAccount(r.Context(), mux.Vars(r)["id"]); err != nil {
		handleServiceError(w, h.logger, err, "delete account")
		return
	}

	u.WriteSuccess(w, http.StatusOK, nil, "Account deleted successfully")
}
