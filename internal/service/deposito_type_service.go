package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_deposito_type_service.go -package=mock_service -source=deposito_type_service.go
type DepositoTypeService interface {
	CreateDepositoType(ctx context.Context, req *models.CreateDepositoTypeRequest) (*models.DepositoType, error)
	GetDepositoType(ctx context.Context, id string) (*models.DepositoType, error)
	ListDepositoTypes(ctx context.Context) ([]*models.DepositoType, error)
	UpdateDepositoType(ctx context.Context, id string, req *models.UpdateDepositoTypeRequest) (*models.DepositoType, error)
	DeleteDepositoType(ctx context.Context, id string) error
}

type DepositoTypeServiceImpl struct {
	depositoTypeRepo repository.DepositoTypeRepository
	logger           *slog.Logger
}

func NewDepositoTypeService(depositoTypeRepo repository.DepositoTypeRepository, logger *slog.Logger) *DepositoTypeServiceImpl {
	return &DepositoTypeServiceImpl{
		depositoTypeRepo: depositoTypeRepo,
		logger:           logger,
	}
}

func (s *DepositoTypeServiceImpl) CreateDepositoType(ctx context.Context, req *models.CreateDepositoTypeRequest) (*models.DepositoType, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewValidationError("name", "must be non-empty")
	}
	if err := validateYearlyReturn(req.YearlyReturn); err != nil {
		s.logger.Warn("invalid create deposito type request", "error", err.Error())
		return nil, err
	}

	depositoType := &models.DepositoType{Name: name, YearlyReturn: req.YearlyReturn}
	if err := s.depositoTypeRepo.Create(ctx, depositoType); err != nil {
		s.logger.Error("failed to create deposito type", "error", err.Error())
		return nil, errors.NewStorageError("create deposito type", err)
	}

	s.logger.Info("deposito type created",
		"deposito_type_id", depositoType.ID,
		"yearly_return", depositoType.YearlyReturn.String(),
	)
	return depositoType, nil
}

func (s *DepositoTypeServiceImpl) GetDepositoType(ctx context.Context, id string) (*models.DepositoType, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	depositoType, err := s.depositoTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error("failed to get deposito type", "deposito_type_id", id, "error", err.Error())
		return nil, errors.NewStorageError("get deposito type", err)
	}
	return depositoType, nil
}

func (s *DepositoTypeServiceImpl) ListDepositoTypes(ctx context.Context) ([]*models.DepositoType, error) {
	types, err := s.depositoTypeRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list deposito types", "error", err.Error())
		return nil, errors.NewStorageError("list deposito types", err)
	}
	return types, nil
}

// UpdateDepositoType applies the non-nil fields of req. Interest on existing
// accounts is always computed from the current rate, so a rate change
// affects every later withdrawal.
func (s *DepositoTypeServiceImpl) UpdateDepositoType(ctx context.Context, id string, req *models.UpdateDepositoTypeRequest) (*models.DepositoType, error) {
	depositoType, err := s.GetDepositoType(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.NewValidationError("name", "must be non-empty")
		}
		depositoType.Name = name
	}
	if req.YearlyReturn != nil {
		if err := validateYearlyReturn(*req.YearlyReturn); err != nil {
			return nil, err
		}
		depositoType.YearlyReturn = *req.YearlyReturn
	}

	if err := s.depositoTypeRepo.Update(ctx, depositoType); err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error("failed to update deposito type", "deposito_type_id", id, "error", err.Error())
		return nil, errors.NewStorageError("update deposito type", err)
	}

	s.logger.Info("deposito type updated",
		"deposito_type_id", id,
		"yearly_return", depositoType.YearlyReturn.String(),
	)
	return depositoType, nil
}

func (s *DepositoTypeServiceImpl) DeleteDepositoType(ctx context.Context, id string) error {
	if err := validateID("id", id); err != nil {
		return err
	}

	if err := s.depositoTypeRepo.Delete(ctx, id); err != nil {
		if errors.IsNotFound(err) || errors.IsConflict(err) {
			s.logger.Warn("deposito type not deleted", "deposito_type_id", id, "reason", err.Error())
			return err
		}
		s.logger.Error("failed to delete deposito type", "deposito_type_id", id, "error", err.Error())
		return errors.NewStorageError("delete deposito type", err)
	}
	return nil
}

func validateYearlyReturn(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return errors.NewValidationError("yearly_return", "must be between 0 and 1")
	}
	return nil
}
