package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/interest"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_transaction_service.go -package=mock_service -source=transaction_service.go
type TransactionService interface {
	Deposit(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error)
	Withdraw(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, accountID string) ([]*models.Transaction, error)
}

type TransactionServiceImpl struct {
	db              *sql.DB
	accountRepo     repository.AccountRepository
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

func NewTransactionService(db *sql.DB, accountRepo repository.AccountRepository, transactionRepo repository.TransactionRepository, logger *slog.Logger) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		db:              db,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// minTransactionAmount is the smallest accepted deposit or withdrawal.
var minTransactionAmount = decimal.New(1, -2)

type transactionCommand struct {
	accountID string
	amount    decimal.Decimal
	date      time.Time
}

// mutation is the type-specific part of a transaction: given the locked
// account it fills BalanceAfter and any interest fields, or rejects.
type mutation func(account *models.Account, cmd transactionCommand, record *models.Transaction) error

// Deposit credits the account with the requested amount.
func (s *TransactionServiceImpl) Deposit(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	return s.process(ctx, models.TransactionTypeDeposit, req, func(account *models.Account, cmd transactionCommand, record *models.Transaction) error {
		record.BalanceAfter = account.Balance.Add(cmd.amount)
		return nil
	})
}

// Withdraw accrues simple interest on the current balance for the calendar
// months since the account was opened, then debits the requested amount.
// The insufficient balance guard applies to the post-interest balance.
func (s *TransactionServiceImpl) Withdraw(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	return s.process(ctx, models.TransactionTypeWithdrawal, req, func(account *models.Account, cmd transactionCommand, record *models.Transaction) error {
		if account.DepositoType == nil {
			s.logger.Warn("account has no deposito type",
				"account_id", account.ID,
				"deposito_type_id", account.DepositoTypeID,
			)
			return errors.ErrAccountDepositoTypeNotFound
		}

		w := interest.ApplyWithdrawal(account.Balance, cmd.amount, account.DepositoType.YearlyReturn, account.CreatedAt, cmd.date)
		if w.Months < 0 {
			s.logger.Warn("withdrawal dated before account creation",
				"account_id", account.ID,
				"account_created_at", account.CreatedAt,
				"transaction_date", cmd.date,
				"months_count", w.Months,
			)
		}

		if w.BalanceAfter.IsNegative() {
			s.logger.Warn("insufficient balance for withdrawal",
				"account_id", account.ID,
				"available_balance", account.Balance.String(),
				"interest_earned", w.InterestEarned.String(),
				"requested_amount", cmd.amount.String(),
			)
			return errors.ErrInsufficientBalance
		}

		months := w.Months
		record.BalanceAfter = w.BalanceAfter
		record.MonthsCount = &months
		record.InterestEarned = decimal.NewNullDecimal(w.InterestEarned)
		return nil
	})
}

// process runs read, compute, insert and balance update for one account in a
// single database transaction. The account row stays locked until commit so
// concurrent mutations of the same account are applied one after another.
func (s *TransactionServiceImpl) process(ctx context.Context, txType models.TransactionType, req *models.CreateTransactionRequest, apply mutation) (*models.Transaction, error) {
	cmd, err := s.validateTransactionRequest(req)
	if err != nil {
		s.logger.Warn("invalid transaction request",
			"type", txType,
			"account_id", req.AccountID,
			"amount", req.Amount.String(),
			"transaction_date", req.TransactionDate,
			"error", err.Error(),
		)
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		s.logger.Error("failed to begin transaction",
			"error", err.Error(),
		)
		return nil, errors.NewStorageError("begin", err)
	}

	// Ensure rollback on error
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	account, err := s.accountRepo.GetAccountByIDForUpdate(ctx, tx, cmd.accountID)
	if err != nil {
		if errors.IsNotFound(err) {
			s.logger.Warn("account not found",
				"account_id", cmd.accountID,
			)
			return nil, err
		}
		s.logger.Error("failed to get account",
			"account_id", cmd.accountID,
			"error", err.Error(),
		)
		return nil, errors.NewStorageError("get account", err)
	}

	record := &models.Transaction{
		AccountID:       account.ID,
		Type:            txType,
		Amount:          cmd.amount,
		TransactionDate: cmd.date,
		BalanceBefore:   account.Balance,
	}
	if err := apply(account, cmd, record); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, tx, record); err != nil {
		s.logger.Error("failed to create transaction record",
			"account_id", account.ID,
			"type", txType,
			"amount", cmd.amount.String(),
			"error", err.Error(),
		)
		return nil, errors.NewStorageError("create transaction record", err)
	}

	if err := s.accountRepo.UpdateAccountBalance(ctx, tx, account.ID, record.BalanceAfter); err != nil {
		s.logger.Error("failed to update account balance",
			"account_id", account.ID,
			"error", err.Error(),
		)
		return nil, errors.NewStorageError("update account balance", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction",
			"transaction_id", record.ID,
			"error", err.Error(),
		)
		return nil, errors.NewStorageError("commit", err)
	}

	// Nullify tx to avoid rollback in defer
	tx = nil

	s.logger.Info("transaction processed",
		"transaction_id", record.ID,
		"account_id", account.ID,
		"type", txType,
		"balance_before", record.BalanceBefore.String(),
		"balance_after", record.BalanceAfter.String(),
	)
	return record, nil
}

func (s *TransactionServiceImpl) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error("failed to get transaction",
			"transaction_id", id,
			"error", err.Error(),
		)
		return nil, errors.NewStorageError("get transaction", err)
	}
	return transaction, nil
}

func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, accountID string) ([]*models.Transaction, error) {
	if err := validateOptionalID("account_id", accountID); err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.List(ctx, accountID)
	if err != nil {
		s.logger.Error("failed to list transactions",
			"account_id", accountID,
			"error", err.Error(),
		)
		return nil, errors.NewStorageError("list transactions", err)
	}
	return transactions, nil
}

func (s *TransactionServiceImpl) validateTransactionRequest(req *models.CreateTransactionRequest) (transactionCommand, error) {
	if err := validateID("account_id", req.AccountID); err != nil {
		return transactionCommand{}, err
	}
	if req.Amount.LessThan(minTransactionAmount) {
		return transactionCommand{}, errors.ErrInvalidAmount
	}
	date, err := parseTransactionDate(req.TransactionDate)
	if err != nil {
		return transactionCommand{}, err
	}
	return transactionCommand{
		accountID: req.AccountID,
		amount:    req.Amount,
		date:      date,
	}, nil
}
