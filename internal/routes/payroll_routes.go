package routes

import (
	"hr-payroll/internal/handler"
	"hr-payroll/internal/repository"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPayrollRoutes(app *fiber.App, db *gorm.DB, protected fiber.Handler) {
	payrollRepo := repository.NewPayrollRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	hdl := handler.NewPayrollHandler(usecase.NewPayrollUsecase(payrollRepo, employeeRepo, attendanceRepo))

	app.Get("/calculate_payroll/:employee_id/:year/:month", protected, hdl.Calculate)
	app.Post("/generate_payroll", protected, hdl.Generate)
	app.Get("/payroll", protected, hdl.GetAll)
	app.Post("/update_payroll_status/:id", protected, hdl.UpdateStatus)
}
