package validate

import (
	"github.com/gofiber/fiber/v2"

	"classroom_manager/constants"
	"classroom_manager/model"
	"classroom_manager/utils"
)

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCourseInput
		// Body optional: an empty body creates the default-shaped course.
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
			}
			if err := validate.Struct(input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
			}
		}
		c.Locals("inputCreateCourse", input)
		return c.Next()
	}
}

func CourseTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CourseTopicInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputCourseTopic", input)
		return c.Next()
	}
}

func CourseType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CourseTypeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputCourseType", input)
		return c.Next()
	}
}

func CourseExpected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CourseExpectedInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputCourseExpected", input)
		return c.Next()
	}
}

func CoursePreviousRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CoursePreviousRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputCoursePreviousRoom", input)
		return c.Next()
	}
}

func CourseAttendance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CourseAttendanceInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputCourseAttendance", input)
		return c.Next()
	}
}
