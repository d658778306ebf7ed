package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
)

//go:generate mockgen -destination=mocks/mock_account_repository.go -package=mock_repository -source=account_repository.go
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)
	GetAccountByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*models.Account, error)
	ListAccounts(ctx context.Context, customerID string) ([]*models.Account, error)
	UpdateAccountBalance(ctx context.Context, tx *sql.Tx, id string, newBalance decimal.Decimal) error
	DeleteAccount(ctx context.Context, id string) error
}

type PostgresAccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// Accounts are always read together with their customer and deposito type.
// The outer joins keep an account visible even if either reference is gone.
const accountSelect = `SELECT a.id, a.customer_id, a.deposito_type_id, a.balance, a.created_at, a.updated_at,
		c.id, c.name, d.id, d.name, d.yearly_return
	FROM accounts a
	LEFT JOIN customers c ON c.id = a.customer_id
	LEFT JOIN deposito_types d ON d.id = a.deposito_type_id`

func scanAccount(row rowScanner) (*models.Account, error) {
	account := &models.Account{}
	var (
		customerID, customerName sql.NullString
		typeID, typeName         sql.NullString
		yearlyReturn             decimal.NullDecimal
	)

	err := row.Scan(
		&account.ID, &account.CustomerID, &account.DepositoTypeID, &account.Balance, &account.CreatedAt, &account.UpdatedAt,
		&customerID, &customerName, &typeID, &typeName, &yearlyReturn,
	)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		account.Customer = &models.CustomerSummary{ID: customerID.String, Name: customerName.String}
	}
	if typeID.Valid {
		account.DepositoType = &models.DepositoTypeSummary{
			ID:           typeID.String,
			Name:         typeName.String,
			YearlyReturn: yearlyReturn.Decimal,
		}
	}
	return account, nil
}

func (r *PostgresAccountRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}

	query := `INSERT INTO accounts (id, customer_id, deposito_type_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, account.ID, account.CustomerID, account.DepositoTypeID, account.Balance).
		Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			// customer or deposito type removed between the service check and the insert
			return missingAccountReference(err)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func missingAccountReference(err error) error {
	switch violatedConstraint(err) {
	case accountsDepositoTypeFKey:
		return errors.ErrDepositoTypeNotFound
	case accountsCustomerFKey:
		return errors.ErrCustomerNotFound
	default:
		return fmt.Errorf("failed to create account: %w", err)
	}
}

func (r *PostgresAccountRepository) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	query := accountSelect + ` WHERE a.id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}
	return account, nil
}

// GetAccountByIDForUpdate locks the account row until tx ends. Only the
// accounts row is locked; FOR UPDATE is not allowed on the nullable side of
// an outer join.
func (r *PostgresAccountRepository) GetAccountByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*models.Account, error) {
	query := accountSelect + ` WHERE a.id = $1 FOR UPDATE OF a`

	account, err := scanAccount(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID for update: %w", err)
	}
	return account, nil
}

func (r *PostgresAccountRepository) ListAccounts(ctx context.Context, customerID string) ([]*models.Account, error) {
	query := accountSelect
	var args []interface{}
	if customerID != "" {
		query += ` WHERE a.customer_id = $1`
		args = append(args, customerID)
	}
	query += ` ORDER BY a.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]*models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over accounts: %w", err)
	}
	return accounts, nil
}

func (r *PostgresAccountRepository) UpdateAccountBalance(ctx context.Context, tx *sql.Tx, id string, newBalance decimal.Decimal) error {
	query := `UPDATE accounts SET balance = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`

	result, err := tx.ExecContext(ctx, query, newBalance, id)
	if err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating account balance: %w", err)
	}

	if rowsAffected == 0 {
		return errors.ErrAccountNotFound
	}

	return nil
}

func (r *PostgresAccountRepository) DeleteAccount(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errors.ErrResourceInUse
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting account: %w", err)
	}
	if rowsAffected == 0 {
		return errors.ErrAccountNotFound
	}
	return nil
}
