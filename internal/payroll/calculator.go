// Package payroll holds the monthly deduction arithmetic. Nothing in here
// touches the database; callers hand in the salary and attendance rows.
package payroll

import (
	"time"

	"hr-payroll/internal/model"

	"github.com/shopspring/decimal"
)

// Policy collects the deduction rates and the daily lateness threshold.
type Policy struct {
	LateThresholdHour   int
	LateThresholdMinute int
	AbsentRate          decimal.Decimal // fraction of the daily salary per absent day
	HalfDayRate         decimal.Decimal // fraction of the daily salary per half day
	LatePerMinute       decimal.Decimal // currency units per late minute
}

var DefaultPolicy = Policy{
	LateThresholdHour:   9,
	LateThresholdMinute: 30,
	AbsentRate:          decimal.RequireFromString("0.10"),
	HalfDayRate:         decimal.RequireFromString("0.05"),
	LatePerMinute:       decimal.RequireFromString("0.1"),
}

// Day is the part of an attendance row the calculator looks at.
type Day struct {
	Status      string
	IsLate      bool
	LateMinutes int
}

type Input struct {
	Salary      decimal.Decimal
	DaysInMonth int
	Days        []Day
}

type Result struct {
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	DailySalary         decimal.Decimal `json:"daily_salary"`
	DaysInMonth         int             `json:"days_in_month"`
	PresentDays         int             `json:"present_days"`
	AbsentDays          int             `json:"absent_days"`
	HalfDays            int             `json:"half_days"`
	LateDays            int             `json:"late_days"`
	TotalLateMinutes    int             `json:"total_late_minutes"`
	AttendanceDeduction decimal.Decimal `json:"attendance_deduction"`
	LateDeduction       decimal.Decimal `json:"late_deduction"`
}

type Totals struct {
	FinalDeductions decimal.Decimal `json:"final_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

// DaysInMonth returns the number of calendar days, or 0 for an invalid month.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Calculate computes attendance and lateness deductions with DefaultPolicy.
func Calculate(in Input) Result {
	return DefaultPolicy.Calculate(in)
}

func (p Policy) Calculate(in Input) Result {
	res := Result{
		BasicSalary: in.Salary,
		DailySalary: decimal.Zero,
		DaysInMonth: in.DaysInMonth,
	}
	if in.DaysInMonth > 0 {
		res.DailySalary = in.Salary.Div(decimal.NewFromInt(int64(in.DaysInMonth)))
	}

	for _, d := range in.Days {
		switch d.Status {
		case model.StatusAbsent:
			res.AbsentDays++
			continue
		case model.StatusHalfDay:
			res.HalfDays++
		default:
			res.PresentDays++
		}
		if d.IsLate && d.LateMinutes > 0 {
			res.LateDays++
			res.TotalLateMinutes += d.LateMinutes
		}
	}

	absent := res.DailySalary.Mul(p.AbsentRate).Mul(decimal.NewFromInt(int64(res.AbsentDays)))
	half := res.DailySalary.Mul(p.HalfDayRate).Mul(decimal.NewFromInt(int64(res.HalfDays)))
	res.AttendanceDeduction = absent.Add(half).Round(2)
	res.LateDeduction = p.LatePerMinute.Mul(decimal.NewFromInt(int64(res.TotalLateMinutes))).Round(2)
	res.DailySalary = res.DailySalary.Round(2)

	return res
}

// Finalize applies the manual adjustments:
// net = basic - (attendance + late + additional deductions - allowances).
func Finalize(res Result, additionalDeductions, additionalAllowances decimal.Decimal) Totals {
	final := res.AttendanceDeduction.
		Add(res.LateDeduction).
		Add(additionalDeductions).
		Sub(additionalAllowances).
		Round(2)

	return Totals{
		FinalDeductions: final,
		NetSalary:       res.BasicSalary.Sub(final).Round(2),
	}
}
