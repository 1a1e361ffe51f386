package routes

import (
	"hr-payroll/internal/handler"
	"hr-payroll/internal/repository"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB, protected fiber.Handler) {
	repo := repository.NewEmployeeRepository(db)
	hdl := handler.NewEmployeeHandler(usecase.NewEmployeeUsecase(repo))

	app.Get("/employees", protected, hdl.GetAll)
	app.Post("/add_employee", protected, hdl.Create)
	app.Delete("/delete_employee/:id", protected, hdl.Delete)
}
