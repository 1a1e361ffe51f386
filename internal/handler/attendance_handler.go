package handler

import (
	"hr-payroll/internal/model"
	"hr-payroll/internal/repository"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	usecase *usecase.AttendanceUsecase
}

func NewAttendanceHandler(u *usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{usecase: u}
}

type AddAttendanceRequest struct {
	EmployeeID  flexInt `json:"employee_id" validate:"required,min=1"`
	Date        string  `json:"date" validate:"required"`
	Status      string  `json:"status" validate:"required"`
	ArrivalTime *string `json:"arrival_time"`
}

func attendanceView(a model.Attendance) fiber.Map {
	view := fiber.Map{
		"id":            a.ID,
		"employee_id":   a.EmployeeID,
		"employee_name": "",
		"date":          a.Date,
		"status":        a.Status,
		"arrival_time":  a.ArrivalTime,
		"is_late":       a.IsLate,
		"late_minutes":  a.LateMinutes,
	}
	if a.Employee != nil {
		view["employee_name"] = a.Employee.Name
	}
	return view
}

func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var req AddAttendanceRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	in := usecase.MarkAttendanceInput{
		EmployeeID: uint(req.EmployeeID),
		Date:       req.Date,
		Status:     req.Status,
	}
	if req.ArrivalTime != nil {
		in.ArrivalTime = *req.ArrivalTime
	}

	attendance, err := h.usecase.Mark(in)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{
		"message":    "Attendance recorded successfully",
		"attendance": attendanceView(*attendance),
	})
}

// GetAll lists attendance, optionally narrowed by ?employee_id=&month=&year=.
func (h *AttendanceHandler) GetAll(c *fiber.Ctx) error {
	filter := repository.AttendanceFilter{
		EmployeeID: uint(c.QueryInt("employee_id", 0)),
		Year:       c.QueryInt("year", 0),
		Month:      c.QueryInt("month", 0),
	}

	list, err := h.usecase.List(filter)
	if err != nil {
		return fail(c, err)
	}

	data := make([]fiber.Map, 0, len(list))
	for _, a := range list {
		data = append(data, attendanceView(a))
	}
	return ok(c, fiber.Map{"attendances": data})
}
