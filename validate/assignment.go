package validate

import (
	"github.com/gofiber/fiber/v2"

	"classroom_manager/constants"
	"classroom_manager/model"
	"classroom_manager/utils"
)

func Assign() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AssignInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputAssign", input)
		return c.Next()
	}
}

func Swap() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SwapInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputSwap", input)
		return c.Next()
	}
}
