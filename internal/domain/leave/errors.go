package leave

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("leave request not found")
	ErrStaffInactive = errors.New("staff member is not active")
	ErrInvalidSpan   = errors.New("end date before start date")
)

// QuotaExceededError rejects a paid leave that would push the staff member's
// approved paid days past the annual quota. Remaining carries the days still
// available so the caller can surface it.
type QuotaExceededError struct {
	Requested int
	Used      int
	Total     int
	Remaining int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("paid leave quota exceeded: requested %d days, %d of %d used, %d remaining", e.Requested, e.Used, e.Total, e.Remaining)
}
