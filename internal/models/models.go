package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DepositoType struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	YearlyReturn decimal.Decimal `json:"yearly_return"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type Account struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	DepositoTypeID string          `json:"deposito_type_id"`
	Balance        decimal.Decimal `json:"balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Populated by the joined read queries.
	Customer     *CustomerSummary     `json:"customer,omitempty"`
	DepositoType *DepositoTypeSummary `json:"deposito_type,omitempty"`
}

type CustomerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DepositoTypeSummary struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	YearlyReturn decimal.Decimal `json:"yearly_return"`
}

// Transaction is an append-only record of one balance mutation.
// MonthsCount and InterestEarned are only set for withdrawals.
type Transaction struct {
	ID              string              `json:"id"`
	AccountID       string              `json:"account_id"`
	Type            TransactionType     `json:"type"`
	Amount          decimal.Decimal     `json:"amount"`
	TransactionDate time.Time           `json:"transaction_date"`
	BalanceBefore   decimal.Decimal     `json:"balance_before"`
	BalanceAfter    decimal.Decimal     `json:"balance_after"`
	MonthsCount     *int                `json:"months_count"`
	InterestEarned  decimal.NullDecimal `json:"interest_earned"`
	CreatedAt       time.Time           `json:"created_at"`

	Account *AccountSummary `json:"account,omitempty"`
}

type AccountSummary struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customer_id"`
	DepositoTypeID string `json:"deposito_type_id"`
}

type CreateCustomerRequest struct {
	Name string `json:"name"`
}

type UpdateCustomerRequest struct {
	Name string `json:"name"`
}

type CreateDepositoTypeRequest struct {
	Name         string          `json:"name"`
	YearlyReturn decimal.Decimal `json:"yearly_return"`
}

// UpdateDepositoTypeRequest carries a partial update; nil fields are left untouched.
type UpdateDepositoTypeRequest struct {
	Name         *string          `json:"name"`
	YearlyReturn *decimal.Decimal `json:"yearly_return"`
}

type CreateAccountRequest struct {
	CustomerID     string           `json:"customer_id"`
	DepositoTypeID string           `json:"deposito_type_id"`
	InitialBalance *decimal.Decimal `json:"initial_balance"`
}

// CreateTransactionRequest is the body of both deposit and withdrawal calls.
type CreateTransactionRequest struct {
	AccountID       string          `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transaction_date"`
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}
