package routes

import (
	"hr-payroll/internal/handler"
	"hr-payroll/internal/repository"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDataRoutes(app *fiber.App, db *gorm.DB, protected fiber.Handler) {
	uc := usecase.NewDataUsecase(repository.NewDataRepository(db))
	hdl := handler.NewDataHandler(uc)

	app.Post("/clear_data", protected, hdl.ClearAll)
}
