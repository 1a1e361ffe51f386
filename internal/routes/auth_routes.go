package routes

import (
	"hr-payroll/internal/handler"
	"hr-payroll/internal/middleware"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, auth *usecase.AuthUsecase, staticDir string) {
	hdl := handler.NewAuthHandler(auth, staticDir)

	app.Get("/", middleware.AuthPage(auth), hdl.Index)
	app.Get("/login", hdl.LoginPage)
	app.Post("/login", hdl.Login)
	app.Get("/logout", hdl.Logout)
}
