package handler

import (
	"hr-payroll/internal/model"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type EmployeeHandler struct {
	usecase *usecase.EmployeeUsecase
}

func NewEmployeeHandler(u *usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{usecase: u}
}

type AddEmployeeRequest struct {
	Name     string           `json:"name" validate:"required,max=100"`
	Email    string           `json:"email" validate:"required,email,max=120"`
	Position string           `json:"position" validate:"required,max=100"`
	Salary   *decimal.Decimal `json:"salary" validate:"required"`
	JoinDate string           `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
}

func employeeView(e model.Employee) fiber.Map {
	return fiber.Map{
		"id":        e.ID,
		"name":      e.Name,
		"email":     e.Email,
		"position":  e.Position,
		"salary":    e.Salary,
		"join_date": e.JoinDate.Format("2006-01-02"),
	}
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	employees, err := h.usecase.List()
	if err != nil {
		return fail(c, err)
	}

	data := make([]fiber.Map, 0, len(employees))
	for _, e := range employees {
		data = append(data, employeeView(e))
	}
	return ok(c, fiber.Map{"employees": data})
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req AddEmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	employee, err := h.usecase.Add(usecase.AddEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
		Salary:   *req.Salary,
		JoinDate: req.JoinDate,
	})
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{
		"message":  "Employee added successfully",
		"employee": employeeView(*employee),
	})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.usecase.Delete(id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "Employee and related records deleted successfully"})
}
