package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
)

// Accepted transaction_date layouts. Layouts without a zone are read as UTC.
var transactionDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func validateID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewValidationError(field, "must be non-empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return errors.NewValidationError(field, "must be a valid UUID")
	}
	return nil
}

// validateOptionalID accepts an empty filter value.
func validateOptionalID(field, id string) error {
	if id == "" {
		return nil
	}
	return validateID(field, id)
}

func parseTransactionDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.NewValidationError("transaction_date", "must be non-empty")
	}
	for _, layout := range transactionDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.NewValidationError("transaction_date", "must be an ISO-8601 date")
}
