package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/repository"
)

const minCustomerNameLength = 3

//go:generate mockgen -destination=mocks/mock_customer_service.go -package=mock_service -source=customer_service.go
type CustomerService interface {
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	ListCustomers(ctx context.Context, search string) ([]*models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type CustomerServiceImpl struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

func NewCustomerService(customerRepo repository.CustomerRepository, logger *slog.Logger) *CustomerServiceImpl {
	return &CustomerServiceImpl{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *CustomerServiceImpl) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	name, err := validateCustomerName(req.Name)
	if err != nil {
		s.logger.Warn("invalid create customer request", "error", err.Error())
		return nil, err
	}

	customer := &models.Customer{Name: name}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error("failed to create customer", "error", err.Error())
		return nil, errors.NewStorageError("create customer", err)
	}

	s.logger.Info("customer created", "customer_id", customer.ID)
	return customer, nil
}

func (s *CustomerServiceImpl) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error("failed to get customer", "customer_id", id, "error", err.Error())
		return nil, errors.NewStorageError("get customer", err)
	}
	return customer, nil
}

func (s *CustomerServiceImpl) ListCustomers(ctx context.Context, search string) ([]*models.Customer, error) {
	customers, err := s.customerRepo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		s.logger.Error("failed to list customers", "error", err.Error())
		return nil, errors.NewStorageError("list customers", err)
	}
	return customers, nil
}

func (s *CustomerServiceImpl) UpdateCustomer(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	name, err := validateCustomerName(req.Name)
	if err != nil {
		s.logger.Warn("invalid update customer request", "customer_id", id, "error", err.Error())
		return nil, err
	}

	customer := &models.Customer{ID: id, Name: name}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error("failed to update customer", "customer_id", id, "error", err.Error())
		return nil, errors.NewStorageError("update customer", err)
	}
	return customer, nil
}

func (s *CustomerServiceImpl) DeleteCustomer(ctx context.Context, id string) error {
	if err := validateID("id", id); err != nil {
		return err
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		if errors.IsNotFound(err) || errors.IsConflict(err) {
			s.logger.Warn("customer not deleted", "customer_id", id, "reason", err.Error())
			return err
		}
		s.logger.Error("failed to delete customer", "customer_id", id, "error", err.Error())
		return errors.NewStorageError("delete customer", err)
	}

	s.logger.Info("customer deleted", "customer_id", id)
	return nil
}

func validateCustomerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < minCustomerNameLength {
		return "", errors.NewValidationError("name", "must be at least 3 characters long")
	}
	return name, nil
}
