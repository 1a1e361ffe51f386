package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PayrollPending  = "pending"
	PayrollApproved = "approved"
	PayrollRejected = "rejected"
)

type Payroll struct {
	ID                   uint            `json:"id" gorm:"primaryKey"`
	EmployeeID           uint            `json:"employee_id" gorm:"not null;uniqueIndex:idx_payroll_employee_period,priority:1"`
	Month                int             `json:"month" gorm:"not null;uniqueIndex:idx_payroll_employee_period,priority:2"`
	Year                 int             `json:"year" gorm:"not null;uniqueIndex:idx_payroll_employee_period,priority:3"`
	BasicSalary          decimal.Decimal `json:"basic_salary" gorm:"type:decimal(14,2);not null"`
	AttendanceDeduction  decimal.Decimal `json:"attendance_deduction" gorm:"type:decimal(14,2);not null;default:0"`
	LateDeduction        decimal.Decimal `json:"late_deduction" gorm:"type:decimal(14,2);not null;default:0"`
	AdditionalDeductions decimal.Decimal `json:"additional_deductions" gorm:"type:decimal(14,2);not null;default:0"`
	AdditionalAllowances decimal.Decimal `json:"additional_allowances" gorm:"type:decimal(14,2);not null;default:0"`
	FinalDeductions      decimal.Decimal `json:"final_deductions" gorm:"type:decimal(14,2);not null;default:0"`
	NetSalary            decimal.Decimal `json:"net_salary" gorm:"type:decimal(14,2);not null"`
	Status               string          `json:"status" gorm:"size:20;not null;default:'pending'"`
	HRComments           string          `json:"hr_comments" gorm:"type:text"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func IsValidPayrollStatus(status string) bool {
	switch status {
	case PayrollPending, PayrollApproved, PayrollRejected:
		return true
	}
	return false
}
