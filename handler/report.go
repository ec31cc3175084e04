package handler

import (
	"github.com/gofiber/fiber/v2"

	"classroom_manager/utils"
)

func (h *Handler) GetSummary(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.planner.Summary())
}

func (h *Handler) GetReport(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.planner.Report())
}
