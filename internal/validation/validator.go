package validation

import (
	"strings"

	"github.com/devrev/recordstore/internal/errors"
	"github.com/devrev/recordstore/internal/model"
)

// Validator gates records before they are inserted into a store
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks a record and returns an InvalidRecord error naming the
// first field that fails. Fields are checked in the order id, name, email,
// salary.
func (v *Validator) Validate(rec model.Record) error {
	if rec.ID <= 0 {
		return errors.InvalidRecord(rec.ID, "id", "must be positive")
	}

	if rec.Name == "" {
		return errors.InvalidRecord(rec.ID, "name", "cannot be empty")
	}

	if rec.Email == "" {
		return errors.InvalidRecord(rec.ID, "email", "cannot be empty")
	}
	if !strings.Contains(rec.Email, "@") {
		return errors.InvalidRecord(rec.ID, "email", "must contain '@'")
	}

	if rec.Salary < 0 {
		return errors.InvalidRecord(rec.ID, "salary", "cannot be negative")
	}

	return nil
}

// IsValid reports whether rec passes validation
func IsValid(rec model.Record) bool {
	return (&Validator{}).Validate(rec) == nil
}
