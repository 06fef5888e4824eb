package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PayslipPDF renders a salary record as a one-page payslip.
func PayslipPDF(record SalaryRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Staff: %s", record.StaffName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %04d-%02d", record.Year, record.Month))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", record.Status))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Working days: %d (closures: %d)", record.WorkingDaysInMonth, record.CompanyClosureDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Actual working days: %.2f", record.ActualWorkingDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Paid leave: %d  Unpaid leave: %d", record.PaidLeavesTaken, record.UnpaidLeavesTaken))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime days: %d  Short days: %d", record.OvertimeDays, record.ShortDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Payable days: %.2f  Deduction days: %.2f", record.PayableDays, record.DeductionDays))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Daily rate: %.2f", record.BaseDailySalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Commission: %.2f", record.Commission))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %.2f", record.NetSalary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
