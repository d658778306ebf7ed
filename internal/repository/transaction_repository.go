package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
)

// TransactionRepository has no update or delete: transactions are append-only.
//
//go:generate mockgen -destination=mocks/mock_transaction_repository.go -package=mock_repository -source=transaction_repository.go
type TransactionRepository interface {
	Create(ctx context.Context, tx *sql.Tx, transaction *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	List(ctx context.Context, accountID string) ([]*models.Transaction, error)
}

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

const transactionSelect = `SELECT t.id, t.account_id, t.type, t.amount, t.transaction_date,
		t.balance_before, t.balance_after, t.months_count, t.interest_earned, t.created_at,
		a.id, a.customer_id, a.deposito_type_id
	FROM transactions t
	LEFT JOIN accounts a ON a.id = t.account_id`

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	var accountID, customerID, typeID sql.NullString

	err := row.Scan(
		&transaction.ID, &transaction.AccountID, &transaction.Type, &transaction.Amount, &transaction.TransactionDate,
		&transaction.BalanceBefore, &transaction.BalanceAfter, &transaction.MonthsCount, &transaction.InterestEarned, &transaction.CreatedAt,
		&accountID, &customerID, &typeID,
	)
	if err != nil {
		return nil, err
	}

	if accountID.Valid {
		transaction.Account = &models.AccountSummary{
			ID:             accountID.String,
			CustomerID:     customerID.String,
			DepositoTypeID: typeID.String,
		}
	}
	return transaction, nil
}

func (r *PostgresTransactionRepository) Create(ctx context.Context, tx *sql.Tx, transaction *models.Transaction) error {
	// Generate UUID if not set
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}

	query := `INSERT INTO transactions (id, account_id, type, amount, transaction_date,
			balance_before, balance_after, months_count, interest_earned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	var monthsCount interface{}
	if transaction.MonthsCount != nil {
		monthsCount = *transaction.MonthsCount
	}

	err := tx.QueryRowContext(ctx, query,
		transaction.ID,
		transaction.AccountID,
		string(transaction.Type),
		transaction.Amount,
		transaction.TransactionDate,
		transaction.BalanceBefore,
		transaction.BalanceAfter,
		monthsCount,
		transaction.InterestEarned,
	).Scan(&transaction.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *PostgresTransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := transactionSelect + ` WHERE t.id = $1`

	transaction, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID: %w", err)
	}
	return transaction, nil
}

// List returns transactions latest transaction_date first, optionally
// restricted to one account.
func (r *PostgresTransactionRepository) List(ctx context.Context, accountID string) ([]*models.Transaction, error) {
	query := transactionSelect
	var args []interface{}
	if accountID != "" {
		query += ` WHERE t.account_id = $1`
		args = append(args, accountID)
	}
	query += ` ORDER BY t.transaction_date DESC, t.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]*models.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over transactions: %w", err)
	}
	return transactions, nil
}
