package payroll

import (
	"testing"
	"time"

	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/attendance"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/leave"
	"github.com/zainkazmi786/GlamourPro-sub001/internal/domain/staff"
)

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(4, 2024); got != 30 {
		t.Fatalf("expected 30 days in April, got %d", got)
	}
	if got := DaysInMonth(2, 2024); got != 29 {
		t.Fatalf("expected 29 days in leap February, got %d", got)
	}
	if got := DaysInMonth(2, 2023); got != 28 {
		t.Fatalf("expected 28 days in February, got %d", got)
	}
}

func TestOverlapDaysClampsToMonth(t *testing.T) {
	window := LeaveWindow{StartDate: day(2024, 3, 28), EndDate: day(2024, 4, 3), Kind: leave.KindPaid}

	if got := OverlapDays(window, 3, 2024); got != 4 {
		t.Fatalf("expected 4 days inside March, got %d", got)
	}
	if got := OverlapDays(window, 4, 2024); got != 3 {
		t.Fatalf("expected 3 days inside April, got %d", got)
	}
	if got := OverlapDays(window, 5, 2024); got != 0 {
		t.Fatalf("expected no overlap with May, got %d", got)
	}
}

func TestTallyAttendance(t *testing.T) {
	leaves := []LeaveWindow{{StartDate: day(2024, 4, 10), EndDate: day(2024, 4, 11), Kind: leave.KindUnpaid}}
	facts := []attendance.DayFact{
		{Date: day(2024, 4, 1), Category: attendance.CategoryPresent, Weight: 1},
		{Date: day(2024, 4, 2), Category: attendance.CategoryPresent},
		{Date: day(2024, 4, 3), Category: attendance.CategoryHalf, Weight: 0.5},
		{Date: day(2024, 4, 4), Category: attendance.CategoryOvertime, Weight: 1},
		{Date: day(2024, 4, 10), Category: attendance.CategoryAbsent},
		{Date: day(2024, 4, 15), Category: attendance.CategoryAbsent},
	}

	tally := TallyAttendance(facts, leaves)
	if tally.ActualWorkingDays != 2 {
		t.Fatalf("expected 2 actual working days (zero weight defaults to 1), got %v", tally.ActualWorkingDays)
	}
	if tally.ShortDays != 1 {
		t.Fatalf("expected 1 short day, got %d", tally.ShortDays)
	}
	if tally.OvertimeDays != 1 {
		t.Fatalf("expected 1 overtime day, got %d", tally.OvertimeDays)
	}
	if tally.UncoveredAbsences != 1 {
		t.Fatalf("expected the absence outside leave to count, got %d", tally.UncoveredAbsences)
	}
}

func TestNetSalaryRoundsHalfUp(t *testing.T) {
	net, clamped := NetSalary(100.01, 0.5, 0)
	if clamped {
		t.Fatal("unexpected clamp")
	}
	// 100.01 * 0.5 = 50.005 -> 50.01 under round-half-up.
	if net != 50.01 {
		t.Fatalf("expected 50.01, got %v", net)
	}
}

func TestNetSalaryClampsNegative(t *testing.T) {
	net, clamped := NetSalary(-100, 5, 0)
	if !clamped {
		t.Fatal("expected negative raw salary to be flagged")
	}
	if net != 0 {
		t.Fatalf("expected net floored at 0, got %v", net)
	}
}

func september(days int, category string) []attendance.DayFact {
	facts := make([]attendance.DayFact, 0, days)
	for d := 1; d <= days; d++ {
		facts = append(facts, attendance.DayFact{Date: day(2024, 9, d), Category: category, Weight: 1})
	}
	return facts
}

func TestComputeRecordReconciliation(t *testing.T) {
	// 30-day month, 2 closure days, 1 approved paid-leave day, 27 actual
	// working days at 100/day: payable 30, net 3000 plus commission.
	member := staff.Staff{ID: "s1", Status: staff.StatusActive, BaseDailySalary: 100}
	closures := []time.Time{day(2024, 9, 5), day(2024, 9, 6)}
	leaves := []LeaveWindow{{StartDate: day(2024, 9, 10), EndDate: day(2024, 9, 10), Kind: leave.KindPaid}}
	facts := september(27, attendance.CategoryPresent)

	record := ComputeRecord(member, 9, 2024, closures, facts, leaves, 250, DefaultPolicy())

	if record.WorkingDaysInMonth != 28 {
		t.Fatalf("expected 28 working days (30 - 2 closures), got %d", record.WorkingDaysInMonth)
	}
	if record.PaidLeavesTaken != 1 || record.UnpaidLeavesTaken != 0 {
		t.Fatalf("unexpected leave split: paid %d unpaid %d", record.PaidLeavesTaken, record.UnpaidLeavesTaken)
	}
	if record.PayableDays != 30 {
		t.Fatalf("expected payable 30, got %v", record.PayableDays)
	}
	if record.NetSalary != 3250 {
		t.Fatalf("expected net 3250, got %v", record.NetSalary)
	}
	if record.DeductionDays != 0 {
		t.Fatalf("expected no deductions, got %v", record.DeductionDays)
	}
	if record.Status != StatusDraft {
		t.Fatalf("expected draft status, got %s", record.Status)
	}
	if len(record.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", record.Warnings)
	}
}

func TestComputeRecordPolicyWeights(t *testing.T) {
	member := staff.Staff{ID: "s1", Status: staff.StatusActive, BaseDailySalary: 100}
	facts := []attendance.DayFact{
		{Date: day(2024, 9, 2), Category: attendance.CategoryPresent, Weight: 1},
		{Date: day(2024, 9, 3), Category: attendance.CategoryHalf, Weight: 0.5},
		{Date: day(2024, 9, 4), Category: attendance.CategoryOvertime, Weight: 1},
	}

	policy := Policy{ShortDayWeight: 0.25, OvertimeCredit: 1.5}
	record := ComputeRecord(member, 9, 2024, nil, facts, nil, 0, policy)

	// 1 present + 1.5 overtime credit + 0.25 short-day credit.
	if record.PayableDays != 2.75 {
		t.Fatalf("expected payable 2.75, got %v", record.PayableDays)
	}
	if record.NetSalary != 275 {
		t.Fatalf("expected net 275, got %v", record.NetSalary)
	}
}

func TestComputeRecordDeductions(t *testing.T) {
	member := staff.Staff{ID: "s1", Status: staff.StatusActive, BaseDailySalary: 100}
	leaves := []LeaveWindow{{StartDate: day(2024, 9, 9), EndDate: day(2024, 9, 11), Kind: leave.KindUnpaid}}
	facts := []attendance.DayFact{
		{Date: day(2024, 9, 9), Category: attendance.CategoryAbsent},
		{Date: day(2024, 9, 20), Category: attendance.CategoryAbsent},
	}

	record := ComputeRecord(member, 9, 2024, nil, facts, leaves, 0, DefaultPolicy())

	if record.UnpaidLeavesTaken != 3 {
		t.Fatalf("expected 3 unpaid leave days, got %d", record.UnpaidLeavesTaken)
	}
	// 3 unpaid days plus the absence on the 20th; the absence on the 9th is
	// covered by the unpaid leave window.
	if record.DeductionDays != 4 {
		t.Fatalf("expected 4 deduction days, got %v", record.DeductionDays)
	}
}
