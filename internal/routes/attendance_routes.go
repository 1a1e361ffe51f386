package routes

import (
	"hr-payroll/internal/handler"
	"hr-payroll/internal/repository"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, protected fiber.Handler) {
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	hdl := handler.NewAttendanceHandler(usecase.NewAttendanceUsecase(attendanceRepo, employeeRepo))

	app.Post("/add_attendance", protected, hdl.Create)
	app.Get("/get_attendance", protected, hdl.GetAll)
}
