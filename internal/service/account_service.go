package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_account_service.go -package=mock_service -source=account_service.go
type AccountService interface {
	CreateAccount(ctx context.Context, req *models.CreateAccountRequest) (*models.Account, error)
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	ListAccounts(ctx context.Context, customerID string) ([]*models.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

type AccountServiceImpl struct {
	accountRepo      repository.AccountRepository
	customerRepo     repository.CustomerRepository
	depositoTypeRepo repository.DepositoTypeRepository
	logger           *slog.Logger
}

func NewAccountService(accountRepo repository.AccountRepository, customerRepo repository.CustomerRepository, depositoTypeRepo repository.DepositoTypeRepository, logger *slog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountRepo:      accountRepo,
		customerRepo:     customerRepo,
		depositoTypeRepo: depositoTypeRepo,
		logger:           logger,
	}
}

// CreateAccount opens an account for an existing customer on an existing
// deposito type. The account's created_at becomes the interest anchor.
func (s *AccountServiceImpl) CreateAccount(ctx context.Context, req *models.CreateAccountRequest) (*models.Account, error) {
	if err := s.validateCreateRequest(req); err != nil {
		s.logger.Warn("invalid create account request",
			"customer_id", req.CustomerID,
			"deposito_type_id", req.DepositoTypeID,
			"error", err.Error(),
		)
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, s.lookupError(err, "get customer", "customer_id", req.CustomerID)
	}

	depositoType, err := s.depositoTypeRepo.GetByID(ctx, req.DepositoTypeID)
	if err != nil {
		return nil, s.lookupError(err, "get deposito type", "deposito_type_id", req.DepositoTypeID)
	}

	balance := decimal.Zero
	if req.InitialBalance != nil {
		balance = *req.InitialBalance
	}

	account := &models.Account{
		CustomerID:     customer.ID,
		DepositoTypeID: depositoType.ID,
		Balance:        balance,
	}

	if err := s.accountRepo.CreateAccount(ctx, account); err != nil {
		s.logger.Error("failed to create account",
			"customer_id", req.CustomerID,
			"error", err.Error(),
		)
		if errors.IsNotFound(err) {
			return nil, err
		}
		return nil, errors.NewStorageError("create account", err)
	}

	account.Customer = &models.CustomerSummary{ID: customer.ID, Name: customer.Name}
	account.DepositoType = &models.DepositoTypeSummary{
		ID:           depositoType.ID,
		Name:         depositoType.Name,
		YearlyReturn: depositoType.YearlyReturn,
	}

	s.logger.Info("account created successfully",
		"account_id", account.ID,
		"customer_id", account.CustomerID,
	)
	return account, nil
}

func (s *AccountServiceImpl) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(err, "get account", "account_id", id)
	}

	return account, nil
}

func (s *AccountServiceImpl) ListAccounts(ctx context.Context, customerID string) ([]*models.Account, error) {
	if err := validateOptionalID("customer_id", customerID); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, customerID)
	if err != nil {
		s.logger.Error("failed to list accounts",
			"customer_id", customerID,
			"error", err.Error(),
		)
		return nil, errors.NewStorageError("list accounts", err)
	}
	return accounts, nil
}

func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, id string) error {
	if err := validateID("id", id); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, id); err != nil {
		if errors.IsNotFound(err) || errors.IsConflict(err) {
			s.logger.Warn("account not deleted",
				"account_id", id,
				"reason", err.Error(),
			)
			return err
		}
		s.logger.Error("failed to delete account",
			"account_id", id,
			"error", err.Error(),
		)
		return errors.NewStorageError("delete account", err)
	}

	s.logger.Info("account deleted", "account_id", id)
	return nil
}

func (s *AccountServiceImpl) validateCreateRequest(req *models.CreateAccountRequest) error {
	if err := validateID("customer_id", req.CustomerID); err != nil {
		return err
	}
	if err := validateID("deposito_type_id", req.DepositoTypeID); err != nil {
		return err
	}
	if req.InitialBalance != nil && req.InitialBalance.IsNegative() {
		return errors.NewValidationError("initial_balance", "must be zero or greater")
	}
	return nil
}

// lookupError passes not-found errors through and wraps everything else as a
// storage failure.
func (s *AccountServiceImpl) lookupError(err error, operation, key, id string) error {
	if errors.IsNotFound(err) {
		s.logger.Warn(err.Error(), key, id)
		return err
	}
	s.logger.Error("failed to "+operation,
		key, id,
		"error", err.Error(),
	)
	return errors.NewStorageError(operation, err)
}
