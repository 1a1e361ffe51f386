package usecase

import (
	"errors"
	"fmt"
	"strings"

	"hr-payroll/internal/apperror"
	"hr-payroll/internal/model"
	"hr-payroll/internal/payroll"
	"hr-payroll/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PayrollPreview struct {
	Employee *model.Employee
	Result   payroll.Result
}

type GeneratePayrollInput struct {
	EmployeeID           uint
	Month                int
	Year                 int
	AdditionalDeductions decimal.Decimal
	AdditionalAllowances decimal.Decimal
	HRComments           string
}

type PayrollUsecase struct {
	repo           repository.PayrollRepository
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	policy         payroll.Policy
}

func NewPayrollUsecase(repo repository.PayrollRepository, employeeRepo repository.EmployeeRepository, attendanceRepo repository.AttendanceRepository) *PayrollUsecase {
	return &PayrollUsecase{
		repo:           repo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		policy:         payroll.DefaultPolicy,
	}
}

func validatePeriod(year, month int) error {
	if month < 1 || month > 12 {
		return apperror.Validation("Please enter a valid month (1-12)")
	}
	// Attendance dates are stored as YYYY-MM-DD, so the year has four digits at most.
	if year < 1 || year > 9999 {
		return apperror.Validation("Please enter a valid year")
	}
	return nil
}

// Preview computes the month's deductions without storing anything.
func (u *PayrollUsecase) Preview(employeeID uint, year, month int) (*PayrollPreview, error) {
	if employeeID == 0 {
		return nil, apperror.Required("employee_id")
	}
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	employee, err := u.employeeRepo.FindByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Employee not found")
		}
		return nil, apperror.DB("Failed to load employee", err)
	}

	records, err := u.attendanceRepo.GetByMonth(employeeID, year, month)
	if err != nil {
		return nil, apperror.DB("Failed to load attendance", err)
	}

	days := make([]payroll.Day, 0, len(records))
	for _, r := range records {
		days = append(days, payroll.Day{Status: r.Status, IsLate: r.IsLate, LateMinutes: r.LateMinutes})
	}

	res := u.policy.Calculate(payroll.Input{
		Salary:      employee.Salary,
		DaysInMonth: payroll.DaysInMonth(year, month),
		Days:        days,
	})
	return &PayrollPreview{Employee: employee, Result: res}, nil
}

// Generate stores the payroll for one employee and period. Deductions are
// always recomputed from attendance; only the manual adjustments come from
// the caller.
func (u *PayrollUsecase) Generate(in GeneratePayrollInput) (*model.Payroll, error) {
	if in.AdditionalDeductions.IsNegative() || in.AdditionalAllowances.IsNegative() {
		return nil, apperror.Validation("Additional deductions and allowances cannot be negative")
	}

	preview, err := u.Preview(in.EmployeeID, in.Year, in.Month)
	if err != nil {
		return nil, err
	}

	additionalDeductions := in.AdditionalDeductions.Round(2)
	additionalAllowances := in.AdditionalAllowances.Round(2)
	totals := payroll.Finalize(preview.Result, additionalDeductions, additionalAllowances)

	record := &model.Payroll{
		EmployeeID:           in.EmployeeID,
		Month:                in.Month,
		Year:                 in.Year,
		BasicSalary:          preview.Result.BasicSalary,
		AttendanceDeduction:  preview.Result.AttendanceDeduction,
		LateDeduction:        preview.Result.LateDeduction,
		AdditionalDeductions: additionalDeductions,
		AdditionalAllowances: additionalAllowances,
		FinalDeductions:      totals.FinalDeductions,
		NetSalary:            totals.NetSalary,
		Status:               model.PayrollPending,
		HRComments:           strings.TrimSpace(in.HRComments),
	}

	if err := u.repo.Create(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Duplicate(fmt.Sprintf("Payroll already generated for this employee for %02d/%d", in.Month, in.Year), err)
		}
		return nil, apperror.DB("Failed to generate payroll", err)
	}
	record.Employee = preview.Employee
	return record, nil
}

func (u *PayrollUsecase) List() ([]model.Payroll, error) {
	list, err := u.repo.GetAll()
	if err != nil {
		return nil, apperror.DB("Failed to load payroll", err)
	}
	return list, nil
}

func (u *PayrollUsecase) UpdateStatus(id uint, status, comments string) (*model.Payroll, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if id == 0 {
		return nil, apperror.Required("id")
	}
	if !model.IsValidPayrollStatus(status) {
		return nil, apperror.Validation("Invalid status, expected one of pending, approved, rejected")
	}

	if err := u.repo.UpdateStatus(id, status, strings.TrimSpace(comments)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Payroll record not found")
		}
		return nil, apperror.DB("Failed to update payroll", err)
	}

	record, err := u.repo.FindByID(id)
	if err != nil {
		return nil, apperror.DB("Failed to load payroll", err)
	}
	return record, nil
}
