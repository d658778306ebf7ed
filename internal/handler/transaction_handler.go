package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/service"
	u "github.com/chaedirdwiantara/bankSavingSystem-API/internal/utils"
)

type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *slog.Logger
}

func NewTransactionHandler(transactionService service.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

func (h *TransactionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/transactions", h.ListTransactions).Methods(http.MethodGet)
	router.HandleFunc("/transactions/deposit", h.Deposit).Methods(http.MethodPost)
	router.HandleFunc("/transactions/withdrawal", h.Withdraw).Methods(http.MethodPost)
	router.HandleFunc("/transactions/{id}", h.GetTransaction).Methods(http.MethodGet)
}

func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if !decodeRequest(w, r, h.logger, &req, "deposit") {
		return
	}

	transaction, err := h.transactionService.Deposit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "deposit")
		return
	}

	u.WriteSuccess(w, http.StatusCreated, transaction, "Deposit processed successfully")
}

func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if !decodeRequest(w, r, h.logger, &req, "withdrawal") {
		return
	}

	transaction, err := h.transactionService.Withdraw(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "withdrawal")
		return
	}

	u.WriteSuccess(w, http.StatusCreated, transaction, "Withdrawal processed successfully")
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transaction, err := h.transactionService.GetTransaction(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, h.logger, err, "get transaction")
		return
	}

	u.WriteSuccess(w, http.StatusOK, transaction, "")
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactionService.ListTransactions(r.Context(), r.URL.Query().Get("account_id"))
	if err != nil {
		handleServiceError(w, h.logger, err, "list transactions")
		return
	}

	u.WriteSuccess(w, http.StatusOK, transactions, "")
}
