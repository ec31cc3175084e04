package validate

import (
	"github.com/gofiber/fiber/v2"

	"classroom_manager/constants"
	"classroom_manager/model"
	"classroom_manager/utils"
)

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		// Body optional: an empty body creates the default-shaped room.
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
			}
			if err := validate.Struct(input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
			}
		}
		c.Locals("inputCreateRoom", input)
		return c.Next()
	}
}

func RenameRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RenameRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputRenameRoom", input)
		return c.Next()
	}
}

func RoomBuilding() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RoomBuildingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputRoomBuilding", input)
		return c.Next()
	}
}

func RoomSeats() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RoomSeatsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputRoomSeats", input)
		return c.Next()
	}
}

func RoomSeatType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RoomSeatTypeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputRoomSeatType", input)
		return c.Next()
	}
}

func RoomAvailable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RoomAvailableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputRoomAvailable", input)
		return c.Next()
	}
}

func RoomApproval() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RoomApprovalInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputRoomApproval", input)
		return c.Next()
	}
}

func RoomUsage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RoomUsageInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputRoomUsage", input)
		return c.Next()
	}
}

func RoomSort() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RoomSortInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputRoomSort", input)
		return c.Next()
	}
}
