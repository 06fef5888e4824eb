package payroll

import "errors"

var (
	ErrNotFound      = errors.New("salary record not found")
	ErrConflict      = errors.New("salary record is not in the required status")
	ErrInvalidPeriod = errors.New("month must be between 1 and 12")
)
