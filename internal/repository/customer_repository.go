package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
)

//go:generate mockgen -destination=mocks/mock_customer_repository.go -package=mock_repository -source=customer_repository.go
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context, search string) ([]*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}

type PostgresCustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func (r *PostgresCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}

	query := `INSERT INTO customers (id, name, created_at, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, customer.ID, customer.Name).
		Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *PostgresCustomerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	query := `SELECT id, name, created_at, updated_at FROM customers WHERE id = $1`

	customer := &models.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&customer.ID, &customer.Name, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}
	return customer, nil
}

// List returns customers newest first. A non-empty search filters by a
// case-insensitive substring match on the name.
func (r *PostgresCustomerRepository) List(ctx context.Context, search string) ([]*models.Customer, error) {
	query := `SELECT id, name, created_at, updated_at FROM customers`
	var args []interface{}
	if search != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*models.Customer, 0)
	for rows.Next() {
		customer := &models.Customer{}
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over customers: %w", err)
	}
	return customers, nil
}

func (r *PostgresCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	query := `UPDATE customers SET name = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, customer.Name, customer.ID).
		Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (r *PostgresCustomerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errors.ErrResourceInUse
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting customer: %w", err)
	}
	if rowsAffected == 0 {
		return errors.ErrCustomerNotFound
	}
	return nil
}
