package staff

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Staff struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email"`
	Status                string    `json:"status"`
	AnnualPaidLeavesQuota int       `json:"annualPaidLeavesQuota"`
	BaseDailySalary       float64   `json:"baseDailySalary"`
	CreatedAt             time.Time `json:"createdAt"`
}

func (s Staff) Active() bool {
	return s.Status == StatusActive
}
