package repository

import (
	"errors"

	"github.com/lib/pq"
)

// foreign_key_violation, raised when deleting a row that is still referenced
// or inserting a row whose reference does not exist.
const pqForeignKeyViolation pq.ErrorCode = "23503"

// Foreign keys of the accounts table, named in migrations/0001_init.sql.
const (
	accountsCustomerFKey     = "accounts_customer_id_fkey"
	accountsDepositoTypeFKey = "accounts_deposito_type_id_fkey"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

func isForeignKeyViolation(err error) bool {
	return hasPQCode(err, pqForeignKeyViolation)
}

// violatedConstraint returns the constraint name carried by a lib/pq error.
func violatedConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
