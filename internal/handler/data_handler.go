package handler

import (
	"hr-payroll/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DataHandler struct {
	usecase *usecase.DataUsecase
}

func NewDataHandler(u *usecase.DataUsecase) *DataHandler {
	return &DataHandler{usecase: u}
}

func (h *DataHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.usecase.ClearAll(); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"message": "All data cleared successfully"})
}
