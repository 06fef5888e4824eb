package payroll

import "time"

// SalaryRecord is the reconciled payroll outcome for one staff member in one
// (month, year). BaseDailySalary is deliberately snapshotted at computation
// time for audit stability; everything else is derived from source facts.
type SalaryRecord struct {
	ID                 string    `json:"id"`
	StaffID            string    `json:"staffId"`
	Month              int       `json:"month"`
	Year               int       `json:"year"`
	BaseDailySalary    float64   `json:"baseDailySalary"`
	BaseMonthlySalary  float64   `json:"baseMonthlySalary"`
	WorkingDaysInMonth int       `json:"workingDaysInMonth"`
	ActualWorkingDays  float64   `json:"actualWorkingDays"`
	PaidLeavesTaken    int       `json:"paidLeavesTaken"`
	UnpaidLeavesTaken  int       `json:"unpaidLeavesTaken"`
	OvertimeDays       int       `json:"overtimeDays"`
	ShortDays          int       `json:"shortDays"`
	CompanyClosureDays int       `json:"companyClosureDays"`
	PayableDays        float64   `json:"payableDays"`
	DeductionDays      float64   `json:"deductionDays"`
	NetSalary          float64   `json:"netSalary"`
	Commission         float64   `json:"commission"`
	Warnings           []string  `json:"warnings,omitempty"`
	Status             string    `json:"status"`
	StaffName          string    `json:"staffName,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// LeaveWindow is an approved leave span feeding the monthly reconciliation.
type LeaveWindow struct {
	StartDate time.Time
	EndDate   time.Time
	Kind      string
}

type RecordFilter struct {
	StaffID string
	Month   int
	Year    int
	Status  string
}
