package routes

import (
	"hr-payroll/internal/handler"
	"hr-payroll/internal/middleware"
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

type Options struct {
	StaticDir   string
	AccessLog   bool
	AppName     string
	DisableCORS bool
}

// NewApp wires every route of the payroll service onto a fresh fiber app.
func NewApp(db *gorm.DB, auth *usecase.AuthUsecase, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		ErrorHandler:          handler.ErrorHandler,
		DisableStartupMessage: true,
	})

	// Middleware Global
	app.Use(recover.New())
	if !opts.DisableCORS {
		app.Use(cors.New())
	}
	if opts.AccessLog {
		app.Use(logger.New())
	}

	if opts.StaticDir != "" {
		app.Static("/static", opts.StaticDir)
	}

	protected := middleware.Auth(auth)

	SetupAuthRoutes(app, auth, opts.StaticDir)
	SetupEmployeeRoutes(app, db, protected)
	SetupAttendanceRoutes(app, db, protected)
	SetupPayrollRoutes(app, db, protected)
	SetupDataRoutes(app, db, protected)

	return app
}
