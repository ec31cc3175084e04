package validate

import (
	"github.com/gofiber/fiber/v2"

	"classroom_manager/constants"
	"classroom_manager/model"
	"classroom_manager/utils"
)

func AttendanceBase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AttendanceBaseInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputAttendanceBase", input)
		return c.Next()
	}
}

func ComparisonYears() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ComparisonYearsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputComparisonYears", input)
		return c.Next()
	}
}

func ConferenceYear() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ConferenceYearInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputConferenceYear", input)
		return c.Next()
	}
}
