package leave

import "time"

const (
	KindPaid   = "paid"
	KindUnpaid = "unpaid"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// LeaveRequest is one contiguous leave span for one staff member. Days and
// Year are always derived from the span; the staff display fields are joined
// at read time, never stored.
type LeaveRequest struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staffId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Kind      string    `json:"kind"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status"`
	Days      int       `json:"days"`
	Year      int       `json:"year"`

	StaffName  string `json:"staffName,omitempty"`
	StaffPhone string `json:"staffPhone,omitempty"`
	StaffEmail string `json:"staffEmail,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QuotaSummary reports paid-leave quota consumption for one staff+year.
// Remaining may be negative when the quota was reduced after approvals
// already consumed it; that is reported, not corrected.
type QuotaSummary struct {
	TotalQuota     int `json:"totalQuota"`
	UsedQuota      int `json:"usedQuota"`
	RemainingQuota int `json:"remainingQuota"`
	Year           int `json:"year"`
}

// RequestFilter narrows List; zero values mean "no constraint" and filters
// are conjunctive.
type RequestFilter struct {
	StaffID string
	Kind    string
	Status  string
	Year    int
}
