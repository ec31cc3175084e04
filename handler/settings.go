package handler

import (
	"github.com/gofiber/fiber/v2"

	"classroom_manager/model"
	"classroom_manager/utils"
)

func (h *Handler) GetSettings(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.planner.Settings())
}

func (h *Handler) SetAttendanceBase(c *fiber.Ctx) error {
	input := c.Locals("inputAttendanceBase").(model.AttendanceBaseInput)
	h.planner.SetAttendanceBase(input.Base)
	return utils.SuccessResponse(c, fiber.StatusOK, h.planner.Settings())
}

func (h *Handler) SetComparisonYears(c *fiber.Ctx) error {
	input := c.Locals("inputComparisonYears").(model.ComparisonYearsInput)
	h.planner.SetComparisonYears(input.Year1, input.Year2)
	return utils.SuccessResponse(c, fiber.StatusOK, h.planner.Settings())
}

func (h *Handler) SetConferenceYear(c *fiber.Ctx) error {
	input := c.Locals("inputConferenceYear").(model.ConferenceYearInput)
	h.planner.SetConferenceYear(input.Year)
	return utils.SuccessResponse(c, fiber.StatusOK, h.planner.Settings())
}
