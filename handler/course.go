package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"

	"classroom_manager/constants"
	"classroom_manager/model"
	"classroom_manager/utils"
)

func (h *Handler) GetCourses(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.planner.Courses())
}

func (h *Handler) CreateCourse(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCourse").(model.CreateCourseInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INVALID_INPUT, errors.New("missing validated input"))
	}

	course := &model.Course{
		Topic:              "New Course Topic",
		Type:               model.TypeLecture,
		ExpectedAttendance: 25,
	}
	copier.Copy(course, &input)

	created := h.planner.AddCourse(course)
	return utils.MessageResponse(c, fiber.StatusCreated, constants.COURSE_ADDED, created)
}

func (h *Handler) DeleteCourse(c *fiber.Ctx) error {
	courseId := c.Params("courseId")
	if !h.planner.DeleteCourse(courseId) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, nil)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.COURSE_DELETED, courseId)
}

func (h *Handler) SetCourseTopic(c *fiber.Ctx) error {
	input := c.Locals("inputCourseTopic").(model.CourseTopicInput)
	courseId := c.Params("courseId")
	if !h.planner.SetCourseTopic(courseId, input.Topic) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"courseId": courseId, "topic": input.Topic})
}

func (h *Handler) SetCourseType(c *fiber.Ctx) error {
	input := c.Locals("inputCourseType").(model.CourseTypeInput)
	courseId := c.Params("courseId")
	if !h.planner.SetCourseType(courseId, input.Type) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"courseId": courseId, "type": input.Type})
}

func (h *Handler) SetCourseExpected(c *fiber.Ctx) error {
	input := c.Locals("inputCourseExpected").(model.CourseExpectedInput)
	courseId := c.Params("courseId")
	if !h.planner.SetCourseExpected(courseId, input.Expected) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"courseId": courseId, "expected": input.Expected})
}

func (h *Handler) SetCoursePreviousRoom(c *fiber.Ctx) error {
	input := c.Locals("inputCoursePreviousRoom").(model.CoursePreviousRoomInput)
	courseId := c.Params("courseId")
	if !h.planner.SetCoursePreviousRoom(courseId, input.PreviousRoom) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"courseId": courseId, "previousRoom": input.PreviousRoom})
}

func (h *Handler) SetCourseAttendance(c *fiber.Ctx) error {
	input := c.Locals("inputCourseAttendance").(model.CourseAttendanceInput)
	courseId := c.Params("courseId")
	if !h.planner.SetCourseAttendance(courseId, input.Year, input.Value) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COURSE_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"courseId": courseId, "year": input.Year, "value": input.Value})
}
