package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"

	"classroom_manager/constants"
	"classroom_manager/model"
	"classroom_manager/utils"
)

func (h *Handler) GetRooms(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.planner.Rooms())
}

func (h *Handler) CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateRoom").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INVALID_INPUT, errors.New("missing validated input"))
	}

	room := &model.Room{
		Name:      "New Room",
		Building:  "Building",
		Seats:     30,
		SeatType:  "Tables",
		Available: true,
		RMUStatus: model.RMUApproved,
	}
	copier.Copy(room, &input)

	created := h.planner.AddRoom(room)
	return utils.MessageResponse(c, fiber.StatusCreated, constants.ROOM_ADDED, created)
}

func (h *Handler) DeleteRoom(c *fiber.Ctx) error {
	roomId := c.Params("roomId")
	if !h.planner.DeleteRoom(roomId) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.ROOM_DELETED, roomId)
}

func (h *Handler) RenameRoom(c *fiber.Ctx) error {
	input := c.Locals("inputRenameRoom").(model.RenameRoomInput)
	roomId := c.Params("roomId")
	if !h.planner.RenameRoom(roomId, input.Name) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"roomId": roomId, "name": input.Name})
}

func (h *Handler) SetRoomBuilding(c *fiber.Ctx) error {
	input := c.Locals("inputRoomBuilding").(model.RoomBuildingInput)
	roomId := c.Params("roomId")
	if !h.planner.SetRoomBuilding(roomId, input.Building) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"roomId": roomId, "building": input.Building})
}

func (h *Handler) SetRoomSeats(c *fiber.Ctx) error {
	input := c.Locals("inputRoomSeats").(model.RoomSeatsInput)
	roomId := c.Params("roomId")
	if !h.planner.SetRoomSeats(roomId, input.Seats) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"roomId": roomId, "seats": input.Seats})
}

func (h *Handler) SetRoomSeatType(c *fiber.Ctx) error {
	input := c.Locals("inputRoomSeatType").(model.RoomSeatTypeInput)
	roomId := c.Params("roomId")
	if !h.planner.SetRoomSeatType(roomId, input.SeatType) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"roomId": roomId, "seatType": input.SeatType})
}

func (h *Handler) SetRoomAvailable(c *fiber.Ctx) error {
	input := c.Locals("inputRoomAvailable").(model.RoomAvailableInput)
	roomId := c.Params("roomId")
	if !h.planner.SetRoomAvailable(roomId, *input.Available) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"roomId": roomId, "available": *input.Available})
}

func (h *Handler) SetRoomApproval(c *fiber.Ctx) error {
	input := c.Locals("inputRoomApproval").(model.RoomApprovalInput)
	roomId := c.Params("roomId")
	if !h.planner.SetRoomApproval(roomId, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"roomId": roomId, "status": input.Status})
}

func (h *Handler) SetRoomUsage(c *fiber.Ctx) error {
	input := c.Locals("inputRoomUsage").(model.RoomUsageInput)
	roomId := c.Params("roomId")
	if !h.planner.SetRoomUsage(roomId, input.Usage) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"roomId": roomId, "usage": input.Usage})
}

func (h *Handler) SortRooms(c *fiber.Ctx) error {
	input := c.Locals("inputRoomSort").(model.RoomSortInput)
	h.planner.SortRooms(input.Column)
	return utils.SuccessResponse(c, fiber.StatusOK, h.planner.Rooms())
}

func (h *Handler) CheckAllAvailable(c *fiber.Ctx) error {
	h.planner.CheckAllAvailable()
	return utils.MessageResponse(c, fiber.StatusOK, constants.ALL_ROOMS_AVAILABLE, h.planner.Rooms())
}

func (h *Handler) UncheckAllAvailable(c *fiber.Ctx) error {
	h.planner.UncheckAllAvailable()
	return utils.MessageResponse(c, fiber.StatusOK, constants.ALL_ROOMS_UNAVAILABLE, h.planner.Rooms())
}
