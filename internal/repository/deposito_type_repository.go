package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
)

//go:generate mockgen -destination=mocks/mock_deposito_type_repository.go -package=mock_repository -source=deposito_type_repository.go
type DepositoTypeRepository interface {
	Create(ctx context.Context, depositoType *models.DepositoType) error
	GetByID(ctx context.Context, id string) (*models.DepositoType, error)
	List(ctx context.Context) ([]*models.DepositoType, error)
	Update(ctx context.Context, depositoType *models.DepositoType) error
	Delete(ctx context.Context, id string) error
}

type PostgresDepositoTypeRepository struct {
	db *sql.DB
}

func NewDepositoTypeRepository(db *sql.DB) *PostgresDepositoTypeRepository {
	return &PostgresDepositoTypeRepository{db: db}
}

const depositoTypeColumns = `id, name, yearly_return, created_at, updated_at`

func scanDepositoType(row rowScanner) (*models.DepositoType, error) {
	dt := &models.DepositoType{}
	err := row.Scan(&dt.ID, &dt.Name, &dt.YearlyReturn, &dt.CreatedAt, &dt.UpdatedAt)
	return dt, err
}

func (r *PostgresDepositoTypeRepository) Create(ctx context.Context, depositoType *models.DepositoType) error {
	if depositoType.ID == "" {
		depositoType.ID = uuid.New().String()
	}

	query := `INSERT INTO deposito_types (id, name, yearly_return, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, depositoType.ID, depositoType.Name, depositoType.YearlyReturn).
		Scan(&depositoType.CreatedAt, &depositoType.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create deposito type: %w", err)
	}
	return nil
}

func (r *PostgresDepositoTypeRepository) GetByID(ctx context.Context, id string) (*models.DepositoType, error) {
	query := `SELECT ` + depositoTypeColumns + ` FROM deposito_types WHERE id = $1`

	dt, err := scanDepositoType(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrDepositoTypeNotFound
		}
		return nil, fmt.Errorf("failed to get deposito type by ID: %w", err)
	}
	return dt, nil
}

// List returns all products, lowest yearly return first.
func (r *PostgresDepositoTypeRepository) List(ctx context.Context) ([]*models.DepositoType, error) {
	query := `SELECT ` + depositoTypeColumns + ` FROM deposito_types ORDER BY yearly_return ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposito types: %w", err)
	}
	defer rows.Close()

	types := make([]*models.DepositoType, 0)
	for rows.Next() {
		dt, err := scanDepositoType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deposito type: %w", err)
		}
		types = append(types, dt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over deposito types: %w", err)
	}
	return types, nil
}

func (r *PostgresDepositoTypeRepository) Update(ctx context.Context, depositoType *models.DepositoType) error {
	query := `UPDATE deposito_types SET name = $1, yearly_return = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, depositoType.Name, depositoType.YearlyReturn, depositoType.ID).
		Scan(&depositoType.CreatedAt, &depositoType.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.ErrDepositoTypeNotFound
		}
		return fmt.Errorf("failed to update deposito type: %w", err)
	}
	return nil
}

func (r *PostgresDepositoTypeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM deposito_types WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errors.ErrResourceInUse
		}
		return fmt.Errorf("failed to delete deposito type: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting deposito type: %w", err)
	}
	if rowsAffected == 0 {
		return errors.ErrDepositoTypeNotFound
	}
	return nil
}
