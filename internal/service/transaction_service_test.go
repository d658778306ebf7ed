package service_test

import (
	"context"
	"database/sql"
	stderrors "errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
	mock_repository "github.com/chaedirdwiantara/bankSavingSystem-API/internal/repository/mocks"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/service"
)

const testAccountID = "0b7f6c1e-3f4a-4c55-9a51-4c1f2d1e9a10"

type transactionFixture struct {
	svc          *service.TransactionServiceImpl
	db           sqlmock.Sqlmock
	accounts     *mock_repository.MockAccountRepository
	transactions *mock_repository.MockTransactionRepository
}

func newTransactionFixture(t *testing.T) *transactionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, dbMock.ExpectationsWereMet())
		db.Close()
	})

	accounts := mock_repository.NewMockAccountRepository(ctrl)
	transactions := mock_repository.NewMockTransactionRepository(ctrl)

	return &transactionFixture{
		svc:          service.NewTransactionService(db, accounts, transactions, discardLogger()),
		db:           dbMock,
		accounts:     accounts,
		transactions: transactions,
	}
}

func savingsAccount(balance, yearlyReturn string, openedAt time.Time) *models.Account {
	return &models.Account{
		ID:             testAccountID,
		CustomerID:     "5f0c0f38-44a4-4d8f-8a3c-0f6f1f0a2b11",
		DepositoTypeID: "8c8e3a40-9b8d-4d7b-9c8a-1234567890ab",
		Balance:        decimal.RequireFromString(balance),
		CreatedAt:      openedAt,
		UpdatedAt:      openedAt,
		DepositoType: &models.DepositoTypeSummary{
			ID:           "8c8e3a40-9b8d-4d7b-9c8a-1234567890ab",
			Name:         "Deposito Gold",
			YearlyReturn: decimal.RequireFromString(yearlyReturn),
		},
	}
}

func request(amount, date string) *models.CreateTransactionRequest {
	return &models.CreateTransactionRequest{
		AccountID:       testAccountID,
		Amount:          decimal.RequireFromString(amount),
		TransactionDate: date,
	}
}

// expectWrites records the insert and the balance update in order and
// captures what was persisted.
func (f *transactionFixture) expectWrites(t *testing.T, persisted *models.Transaction, balance *decimal.Decimal) {
	gomock.InOrder(
		f.transactions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *sql.Tx, record *models.Transaction) error {
				assert.NotNil(t, tx)
				record.ID = "3d6f4b2a-8a4e-4d0b-b6d2-9f2f4e7c1a55"
				record.CreatedAt = time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC)
				*persisted = *record
				return nil
			}),
		f.accounts.EXPECT().UpdateAccountBalance(gomock.Any(), gomock.Any(), testAccountID, gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *sql.Tx, _ string, newBalance decimal.Decimal) error {
				assert.NotNil(t, tx)
				*balance = newBalance
				return nil
			}),
	)
}

func TestTransactionService_Withdraw(t *testing.T) {
	t.Run("accrues interest and debits amount", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("1000000", "0.05", time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		var persisted models.Transaction
		var newBalance decimal.Decimal
		f.expectWrites(t, &persisted, &newBalance)
		f.db.ExpectCommit()

		got, err := f.svc.Withdraw(context.Background(), request("500000", "2025-07-02"))
		require.NoError(t, err)

		assert.Equal(t, models.TransactionTypeWithdrawal, got.Type)
		assert.True(t, decimal.NewFromInt(500000).Equal(got.Amount), "amount %s", got.Amount)
		assert.True(t, decimal.NewFromInt(1000000).Equal(got.BalanceBefore))
		assert.True(t, decimal.NewFromInt(525000).Equal(got.BalanceAfter), "balance_after %s", got.BalanceAfter)
		require.NotNil(t, got.MonthsCount)
		assert.Equal(t, 6, *got.MonthsCount)
		require.True(t, got.InterestEarned.Valid)
		assert.True(t, decimal.NewFromInt(25000).Equal(got.InterestEarned.Decimal), "interest %s", got.InterestEarned.Decimal)
		assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), got.TransactionDate)

		assert.Equal(t, *got, persisted)
		assert.True(t, persisted.BalanceAfter.Equal(newBalance), "account balance %s differs from record %s", newBalance, persisted.BalanceAfter)
	})

	t.Run("insufficient post-interest balance writes nothing", func(t *testing.T) {
		f := newTransactionFixture(t)
		// 100 held 12 months at 10% earns 10; 100 - 150 + 10 = -40
		account := savingsAccount("100", "0.1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		f.db.ExpectRollback()

		got, err := f.svc.Withdraw(context.Background(), request("150", "2025-01-01"))

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errors.ErrInsufficientBalance)
		assert.Equal(t, errors.KindInsufficientBalance, errors.KindOf(err))
	})

	t.Run("interest rescues withdrawal above principal", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("1000", "0.12", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		var persisted models.Transaction
		var newBalance decimal.Decimal
		f.expectWrites(t, &persisted, &newBalance)
		f.db.ExpectCommit()

		got, err := f.svc.Withdraw(context.Background(), request("1050", "2025-06-01T10:30:00Z"))
		require.NoError(t, err)

		assert.Equal(t, 5, *got.MonthsCount)
		assert.True(t, decimal.NewFromInt(50).Equal(got.InterestEarned.Decimal))
		assert.True(t, got.BalanceAfter.IsZero())
		assert.True(t, newBalance.IsZero())
	})

	t.Run("same calendar month earns nothing", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("2000", "0.05", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		var persisted models.Transaction
		var newBalance decimal.Decimal
		f.expectWrites(t, &persisted, &newBalance)
		f.db.ExpectCommit()

		got, err := f.svc.Withdraw(context.Background(), request("500", "2025-01-16"))
		require.NoError(t, err)

		assert.Equal(t, 0, *got.MonthsCount)
		assert.True(t, got.InterestEarned.Valid)
		assert.True(t, got.InterestEarned.Decimal.IsZero())
		assert.True(t, decimal.NewFromInt(1500).Equal(got.BalanceAfter))
	})

	t.Run("backdated withdrawal accrues negative interest", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("1200", "0.1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		var persisted models.Transaction
		var newBalance decimal.Decimal
		f.expectWrites(t, &persisted, &newBalance)
		f.db.ExpectCommit()

		got, err := f.svc.Withdraw(context.Background(), request("100", "2025-01-01"))
		require.NoError(t, err)

		assert.Equal(t, -2, *got.MonthsCount)
		assert.True(t, decimal.NewFromInt(-20).Equal(got.InterestEarned.Decimal))
		assert.True(t, decimal.NewFromInt(1080).Equal(got.BalanceAfter))
	})

	t.Run("account without deposito type", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("1000", "0.05", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		account.DepositoType = nil

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		f.db.ExpectRollback()

		_, err := f.svc.Withdraw(context.Background(), request("10", "2025-02-01"))

		assert.ErrorIs(t, err, errors.ErrAccountDepositoTypeNotFound)
		assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	})

	t.Run("account not found", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(nil, errors.ErrAccountNotFound)
		f.db.ExpectRollback()

		_, err := f.svc.Withdraw(context.Background(), request("10", "2025-02-01"))

		assert.ErrorIs(t, err, errors.ErrAccountNotFound)
	})

	t.Run("balance update failure rolls back", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("1000000", "0.05", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		f.transactions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.accounts.EXPECT().UpdateAccountBalance(gomock.Any(), gomock.Any(), testAccountID, gomock.Any()).
			Return(stderrors.New("connection reset by peer"))
		f.db.ExpectRollback()

		got, err := f.svc.Withdraw(context.Background(), request("10", "2025-07-01"))

		assert.Nil(t, got)
		var storageErr *errors.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "update account balance", storageErr.Operation)
		assert.Equal(t, errors.KindStorage, errors.KindOf(err))
	})
}

func TestTransactionService_Deposit(t *testing.T) {
	t.Run("adds amount exactly", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("1000.10", "0.05", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		var persisted models.Transaction
		var newBalance decimal.Decimal
		f.expectWrites(t, &persisted, &newBalance)
		f.db.ExpectCommit()

		got, err := f.svc.Deposit(context.Background(), request("250.25", "2025-03-05T14:00:00+07:00"))
		require.NoError(t, err)

		assert.Equal(t, models.TransactionTypeDeposit, got.Type)
		assert.True(t, decimal.RequireFromString("1000.10").Equal(got.BalanceBefore))
		assert.True(t, decimal.RequireFromString("1250.35").Equal(got.BalanceAfter), "balance_after %s", got.BalanceAfter)
		assert.True(t, got.BalanceAfter.Equal(newBalance))
		assert.Nil(t, got.MonthsCount)
		assert.False(t, got.InterestEarned.Valid)
		assert.Equal(t, time.Date(2025, 3, 5, 7, 0, 0, 0, time.UTC), got.TransactionDate)
	})

	t.Run("accepts the smallest amount", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("5", "0.05", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		var persisted models.Transaction
		var newBalance decimal.Decimal
		f.expectWrites(t, &persisted, &newBalance)
		f.db.ExpectCommit()

		got, err := f.svc.Deposit(context.Background(), request("0.01", "2025-03-05"))
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("5.01").Equal(got.BalanceAfter), "balance_after %s", got.BalanceAfter)
	})

	t.Run("deposit does not need a deposito type", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("0", "0", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		account.DepositoType = nil

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		var persisted models.Transaction
		var newBalance decimal.Decimal
		f.expectWrites(t, &persisted, &newBalance)
		f.db.ExpectCommit()

		got, err := f.svc.Deposit(context.Background(), request("75", "2025-03-05"))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(75).Equal(got.BalanceAfter))
	})

	t.Run("account not found performs no writes", func(t *testing.T) {
		f := newTransactionFixture(t)

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(nil, errors.ErrAccountNotFound)
		f.db.ExpectRollback()

		got, err := f.svc.Deposit(context.Background(), request("10", "2025-02-01"))

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errors.ErrAccountNotFound)
		assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("10", "0.05", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		f.transactions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(stderrors.New("insert failed"))
		f.db.ExpectRollback()

		_, err := f.svc.Deposit(context.Background(), request("10", "2025-02-01"))

		var storageErr *errors.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "create transaction record", storageErr.Operation)
	})

	t.Run("begin failure", func(t *testing.T) {
		f := newTransactionFixture(t)
		f.db.ExpectBegin().WillReturnError(stderrors.New("too many connections"))

		_, err := f.svc.Deposit(context.Background(), request("10", "2025-02-01"))

		assert.Equal(t, errors.KindStorage, errors.KindOf(err))
	})

	t.Run("commit failure", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := savingsAccount("10", "0.05", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		f.db.ExpectBegin()
		f.accounts.EXPECT().GetAccountByIDForUpdate(gomock.Any(), gomock.Any(), testAccountID).Return(account, nil)
		f.transactions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.accounts.EXPECT().UpdateAccountBalance(gomock.Any(), gomock.Any(), testAccountID, gomock.Any()).Return(nil)
		f.db.ExpectCommit().WillReturnError(stderrors.New("could not serialize access"))

		_, err := f.svc.Deposit(context.Background(), request("10", "2025-02-01"))

		var storageErr *errors.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "commit", storageErr.Operation)
	})
}

func TestTransactionService_ValidatesBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.CreateTransactionRequest
		wantErr error
	}{
		{
			name:    "zero amount",
			req:     request("0", "2025-01-01"),
			wantErr: errors.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     request("-5", "2025-01-01"),
			wantErr: errors.ErrInvalidAmount,
		},
		{
			name:    "below one cent",
			req:     request("0.001", "2025-01-01"),
			wantErr: errors.ErrInvalidAmount,
		},
		{
			name: "missing account id",
			req: &models.CreateTransactionRequest{
				Amount:          decimal.NewFromInt(10),
				TransactionDate: "2025-01-01",
			},
		},
		{
			name: "account id not a uuid",
			req: &models.CreateTransactionRequest{
				AccountID:       "acc-1",
				Amount:          decimal.NewFromInt(10),
				TransactionDate: "2025-01-01",
			},
		},
		{
			name: "missing date",
			req:  request("10", ""),
		},
		{
			name: "malformed date",
			req:  request("10", "01/02/2025"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No sqlmock or repository expectations: any storage call fails the test.
			f := newTransactionFixture(t)

			_, depositErr := f.svc.Deposit(context.Background(), tt.req)
			_, withdrawErr := f.svc.Withdraw(context.Background(), tt.req)

			for _, err := range []error{depositErr, withdrawErr} {
				assert.Equal(t, errors.KindValidation, errors.KindOf(err))
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			}
		})
	}
}

func TestTransactionService_GetTransaction(t *testing.T) {
	f := newTransactionFixture(t)
	months := 6
	stored := &models.Transaction{
		ID:              "3d6f4b2a-8a4e-4d0b-b6d2-9f2f4e7c1a55",
		AccountID:       testAccountID,
		Type:            models.TransactionTypeWithdrawal,
		Amount:          decimal.NewFromInt(500000),
		TransactionDate: time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		BalanceBefore:   decimal.NewFromInt(1000000),
		BalanceAfter:    decimal.NewFromInt(525000),
		MonthsCount:     &months,
		InterestEarned:  decimal.NewNullDecimal(decimal.NewFromInt(25000)),
	}
	f.transactions.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil).Times(2)

	first, err := f.svc.GetTransaction(context.Background(), stored.ID)
	require.NoError(t, err)
	second, err := f.svc.GetTransaction(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	t.Run("not found", func(t *testing.T) {
		id := "9a0e2b7c-1111-4c55-9a51-4c1f2d1e9a10"
		f.transactions.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.ErrTransactionNotFound)

		_, err := f.svc.GetTransaction(context.Background(), id)
		assert.ErrorIs(t, err, errors.ErrTransactionNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := f.svc.GetTransaction(context.Background(), "not-a-uuid")
		assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	})
}

func TestTransactionService_ListTransactions(t *testing.T) {
	f := newTransactionFixture(t)
	want := []*models.Transaction{{ID: "a"}, {ID: "b"}}

	f.transactions.EXPECT().List(gomock.Any(), testAccountID).Return(want, nil)
	got, err := f.svc.ListTransactions(context.Background(), testAccountID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	f.transactions.EXPECT().List(gomock.Any(), "").Return(nil, stderrors.New("timeout"))
	_, err = f.svc.ListTransactions(context.Background(), "")
	assert.Equal(t, errors.KindStorage, errors.KindOf(err))

	_, err = f.svc.ListTransactions(context.Background(), "bogus")
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
}
