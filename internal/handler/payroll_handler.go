package handler

import (
	"strconv"

	"hr-payroll/internal/apperror"
	"hr-payroll/internal/model"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type PayrollHandler struct {
	usecase *usecase.PayrollUsecase
}

func NewPayrollHandler(u *usecase.PayrollUsecase) *PayrollHandler {
	return &PayrollHandler{usecase: u}
}

// GeneratePayrollRequest may also carry the preview amounts the UI echoes
// back (basic_salary, attendance_deduction, ...); those are recomputed.
type GeneratePayrollRequest struct {
	EmployeeID           flexInt          `json:"employee_id" validate:"required,min=1"`
	Month                flexInt          `json:"month" validate:"required,min=1,max=12"`
	Year                 flexInt          `json:"year" validate:"required"`
	AdditionalDeductions *decimal.Decimal `json:"additional_deductions"`
	AdditionalAllowances *decimal.Decimal `json:"additional_allowances"`
	HRComments           string           `json:"hr_comments" validate:"max=2000"`
}

type UpdatePayrollStatusRequest struct {
	Status     string `json:"status" validate:"required"`
	HRComments string `json:"hr_comments" validate:"max=2000"`
}

func payrollView(p model.Payroll) fiber.Map {
	view := fiber.Map{
		"id":                    p.ID,
		"employee_id":           p.EmployeeID,
		"employee_name":         "",
		"month":                 p.Month,
		"year":                  p.Year,
		"basic_salary":          p.BasicSalary,
		"attendance_deduction":  p.AttendanceDeduction,
		"late_deduction":        p.LateDeduction,
		"additional_deductions": p.AdditionalDeductions,
		"additional_allowances": p.AdditionalAllowances,
		"final_deductions":      p.FinalDeductions,
		"net_salary":            p.NetSalary,
		"status":                p.Status,
		"hr_comments":           p.HRComments,
		"created_at":            p.CreatedAt.Format("2006-01-02"),
	}
	if p.Employee != nil {
		view["employee_name"] = p.Employee.Name
	}
	return view
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// Calculate previews one employee's payroll for /:employee_id/:year/:month.
func (h *PayrollHandler) Calculate(c *fiber.Ctx) error {
	employeeID, err := paramID(c, "employee_id")
	if err != nil {
		return fail(c, err)
	}
	year, errYear := strconv.Atoi(c.Params("year"))
	month, errMonth := strconv.Atoi(c.Params("month"))
	if errYear != nil || errMonth != nil {
		return fail(c, apperror.Invalid("Invalid year or month", nil))
	}

	preview, err := h.usecase.Preview(employeeID, year, month)
	if err != nil {
		return fail(c, err)
	}

	res := preview.Result
	total := res.AttendanceDeduction.Add(res.LateDeduction)
	return ok(c, fiber.Map{
		"employee_id":          preview.Employee.ID,
		"employee_name":        preview.Employee.Name,
		"month":                month,
		"year":                 year,
		"basic_salary":         res.BasicSalary,
		"daily_salary":         res.DailySalary,
		"days_in_month":        res.DaysInMonth,
		"present_days":         res.PresentDays,
		"absent_days":          res.AbsentDays,
		"half_days":            res.HalfDays,
		"late_days":            res.LateDays,
		"total_late_minutes":   res.TotalLateMinutes,
		"attendance_deduction": res.AttendanceDeduction,
		"late_deduction":       res.LateDeduction,
		"total_deductions":     total,
		"net_salary":           res.BasicSalary.Sub(total),
	})
}

func (h *PayrollHandler) Generate(c *fiber.Ctx) error {
	var req GeneratePayrollRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	record, err := h.usecase.Generate(usecase.GeneratePayrollInput{
		EmployeeID:           uint(req.EmployeeID),
		Month:                int(req.Month),
		Year:                 int(req.Year),
		AdditionalDeductions: orZero(req.AdditionalDeductions),
		AdditionalAllowances: orZero(req.AdditionalAllowances),
		HRComments:           req.HRComments,
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{
		"message": "Payroll generated successfully",
		"payroll": payrollView(*record),
	})
}

func (h *PayrollHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.usecase.List()
	if err != nil {
		return fail(c, err)
	}

	data := make([]fiber.Map, 0, len(list))
	for _, p := range list {
		data = append(data, payrollView(p))
	}
	return ok(c, fiber.Map{"payroll": data})
}

func (h *PayrollHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req UpdatePayrollStatusRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	record, err := h.usecase.UpdateStatus(id, req.Status, req.HRComments)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{
		"message": "Payroll status updated",
		"payroll": payrollView(*record),
	})
}
