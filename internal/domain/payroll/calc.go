package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/attendance"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/leave"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/staff"
)

// Policy carries the externally configured day-weighting rules. What a short
// day pays and what an overtime day credits are business decisions, so they
// arrive from configuration rather than being baked in here.
type Policy struct {
	// ShortDayWeight is the payable credit of a short (half) day, in [0,1].
	ShortDayWeight float64
	// OvertimeCredit is the payable credit of one overtime day.
	OvertimeCredit float64
}

func DefaultPolicy() Policy {
	return Policy{ShortDayWeight: 0.5, OvertimeCredit: 1.0}
}

// MonthBounds returns the first and last calendar day of the month, inclusive.
func MonthBounds(month, year int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

func DaysInMonth(month, year int) int {
	first, last := MonthBounds(month, year)
	return int(last.Sub(first).Hours()/24) + 1
}

// OverlapDays counts the days of a leave window falling inside the month.
// Spans crossing the month boundary are attributed only for the inside part.
func OverlapDays(window LeaveWindow, month, year int) int {
	first, last := MonthBounds(month, year)
	start := window.StartDate
	end := window.EndDate
	if start.Before(first) {
		start = first
	}
	if end.After(last) {
		end = last
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Tally aggregates one month of attendance facts against the approved leave
// windows of the same month.
type Tally struct {
	ActualWorkingDays float64
	OvertimeDays      int
	ShortDays         int
	// UncoveredAbsences counts absent days that fall outside every approved
	// leave window; they deduct pay.
	UncoveredAbsences int
}

func TallyAttendance(facts []attendance.DayFact, leaves []LeaveWindow) Tally {
	var tally Tally
	for _, fact := range facts {
		switch fact.Category {
		case attendance.CategoryPresent:
			weight := fact.Weight
			if weight <= 0 {
				weight = 1
			}
			tally.ActualWorkingDays += weight
		case attendance.CategoryHalf:
			tally.ShortDays++
		case attendance.CategoryOvertime:
			tally.OvertimeDays++
		case attendance.CategoryAbsent:
			if !coveredByLeave(fact.Date, leaves) {
				tally.UncoveredAbsences++
			}
		}
	}
	return tally
}

func coveredByLeave(date time.Time, leaves []LeaveWindow) bool {
	for _, window := range leaves {
		if !date.Before(window.StartDate) && !date.After(window.EndDate) {
			return true
		}
	}
	return false
}

// NetSalary computes round-half-up(baseDaily × payableDays, 2) + commission.
// The result is floored at zero; the second return reports whether the raw
// figure was negative and got clamped.
func NetSalary(baseDaily, payableDays, commission float64) (float64, bool) {
	net := decimal.NewFromFloat(baseDaily).
		Mul(decimal.NewFromFloat(payableDays)).
		Round(2).
		Add(decimal.NewFromFloat(commission))
	if net.IsNegative() {
		return 0, true
	}
	out, _ := net.Round(2).Float64()
	return out, false
}

// ComputeRecord reconciles one staff member's month into a draft salary
// record. It is pure: the same inputs always produce the same record.
func ComputeRecord(member staff.Staff, month, year int, closures []time.Time, facts []attendance.DayFact, leaves []LeaveWindow, commission float64, policy Policy) SalaryRecord {
	var paidDays, unpaidDays int
	for _, window := range leaves {
		days := OverlapDays(window, month, year)
		if window.Kind == leave.KindPaid {
			paidDays += days
		} else {
			unpaidDays += days
		}
	}

	tally := TallyAttendance(facts, leaves)
	closureDays := len(closures)
	workingDays := DaysInMonth(month, year) - closureDays

	payable := tally.ActualWorkingDays +
		float64(paidDays) +
		float64(closureDays) +
		float64(tally.OvertimeDays)*policy.OvertimeCredit +
		float64(tally.ShortDays)*policy.ShortDayWeight
	if payable < 0 {
		payable = 0
	}

	deduction := float64(unpaidDays) + float64(tally.UncoveredAbsences)
	if deduction < 0 {
		deduction = 0
	}

	record := SalaryRecord{
		StaffID:            member.ID,
		Month:              month,
		Year:               year,
		BaseDailySalary:    member.BaseDailySalary,
		BaseMonthlySalary:  member.BaseDailySalary * float64(workingDays),
		WorkingDaysInMonth: workingDays,
		ActualWorkingDays:  tally.ActualWorkingDays,
		PaidLeavesTaken:    paidDays,
		UnpaidLeavesTaken:  unpaidDays,
		OvertimeDays:       tally.OvertimeDays,
		ShortDays:          tally.ShortDays,
		CompanyClosureDays: closureDays,
		PayableDays:        payable,
		DeductionDays:      deduction,
		Commission:         commission,
		Status:             StatusDraft,
	}

	net, clamped := NetSalary(member.BaseDailySalary, payable, commission)
	record.NetSalary = net
	if clamped {
		record.Warnings = append(record.Warnings, WarningNegativeNet)
	}
	return record
}
