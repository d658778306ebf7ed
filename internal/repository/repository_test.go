package repository_test

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	customerID     = "5f0c0f38-44a4-4d8f-8a3c-0f6f1f0a2b11"
	depositoTypeID = "8c8e3a40-9b8d-4d7b-9c8a-1234567890ab"
	accountID      = "0b7f6c1e-3f4a-4c55-9a51-4c1f2d1e9a10"
	transactionID  = "c1d2e3f4-1111-4222-8333-944455556666"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}
