package handler

import (
	"github.com/gofiber/fiber/v2"

	"classroom_manager/constants"
	"classroom_manager/model"
	"classroom_manager/planner"
	"classroom_manager/utils"
)

// Assign links a course to a room. An occupied target answers 409 with the
// pending conflict so the caller can force or cancel it.
func (h *Handler) Assign(c *fiber.Ctx) error {
	input := c.Locals("inputAssign").(model.AssignInput)

	switch h.planner.Assign(input.CourseID, input.RoomName) {
	case planner.AssignDone:
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"courseId": input.CourseID,
			"roomName": input.RoomName,
		})
	case planner.AssignConflict:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":   "conflict",
			"conflict": h.planner.Conflict(),
		})
	case planner.AssignNoCourse:
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, nil)
	default:
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}
}

func (h *Handler) Unassign(c *fiber.Ctx) error {
	courseId := c.Params("courseId")
	if !h.planner.Unassign(courseId) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"courseId": courseId})
}

func (h *Handler) GetConflict(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.planner.Conflict())
}

func (h *Handler) ForceAssign(c *fiber.Ctx) error {
	conflict := h.planner.ForceAssign()
	if conflict == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_PENDING_CONFLICT, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, conflict)
}

func (h *Handler) CancelConflict(c *fiber.Ctx) error {
	if !h.planner.ResolveConflict() {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_PENDING_CONFLICT, nil)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.CONFLICT_CANCELLED, nil)
}

func (h *Handler) Swap(c *fiber.Ctx) error {
	input := c.Locals("inputSwap").(model.SwapInput)
	if err := h.planner.Swap(input.CourseID1, input.CourseID2); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SWAP_NEEDS_ASSIGNMENTS, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.ROOM_SWAP_DONE, fiber.Map{
		"courseId1": input.CourseID1,
		"courseId2": input.CourseID2,
	})
}
