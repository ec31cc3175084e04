package router

import (
	"classroom_manager/handler"
	"classroom_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	rooms := v1.Group("/rooms", logger.New())
	rooms.Get("/", h.GetRooms)
	rooms.Post("/", validate.CreateRoom(), h.CreateRoom)
	rooms.Post("/sort", validate.RoomSort(), h.SortRooms)
	rooms.Post("/check-all", h.CheckAllAvailable)
	rooms.Post("/uncheck-all", h.UncheckAllAvailable)
	rooms.Delete("/:roomId", h.DeleteRoom)
	rooms.Patch("/:roomId/name", validate.RenameRoom(), h.RenameRoom)
	rooms.Patch("/:roomId/building", validate.RoomBuilding(), h.SetRoomBuilding)
	rooms.Patch("/:roomId/seats", validate.RoomSeats(), h.SetRoomSeats)
	rooms.Patch("/:roomId/seat-type", validate.RoomSeatType(), h.SetRoomSeatType)
	rooms.Patch("/:roomId/available", validate.RoomAvailable(), h.SetRoomAvailable)
	rooms.Patch("/:roomId/approval", validate.RoomApproval(), h.SetRoomApproval)
	rooms.Patch("/:roomId/usage", validate.RoomUsage(), h.SetRoomUsage)

	courses := v1.Group("/courses", logger.New())
	courses.Get("/", h.GetCourses)
	courses.Post("/", validate.CreateCourse(), h.CreateCourse)
	courses.Delete("/:courseId", h.DeleteCourse)
	courses.Patch("/:courseId/topic", validate.CourseTopic(), h.SetCourseTopic)
	courses.Patch("/:courseId/type", validate.CourseType(), h.SetCourseType)
	courses.Patch("/:courseId/expected", validate.CourseExpected(), h.SetCourseExpected)
	courses.Patch("/:courseId/previous-room", validate.CoursePreviousRoom(), h.SetCoursePreviousRoom)
	courses.Patch("/:courseId/attendance", validate.CourseAttendance(), h.SetCourseAttendance)

	assignments := v1.Group("/assignments", logger.New())
	assignments.Post("/", validate.Assign(), h.Assign)
	assignments.Post("/force", h.ForceAssign)
	assignments.Post("/swap", validate.Swap(), h.Swap)
	assignments.Get("/conflict", h.GetConflict)
	assignments.Delete("/conflict", h.CancelConflict)
	assignments.Delete("/:courseId", h.Unassign)

	settings := v1.Group("/settings", logger.New())
	settings.Get("/", h.GetSettings)
	settings.Patch("/attendance-base", validate.AttendanceBase(), h.SetAttendanceBase)
	settings.Patch("/years", validate.ComparisonYears(), h.SetComparisonYears)
	settings.Patch("/conference-year", validate.ConferenceYear(), h.SetConferenceYear)

	v1.Get("/summary", h.GetSummary)
	v1.Get("/report", h.GetReport)

	export := v1.Group("/export", logger.New())
	export.Get("/file", h.ExportFile)
	export.Get("/csv", h.ExportCSV)
	export.Get("/xlsx", h.ExportXLSX)

	v1.Post("/import/file", h.ImportFile)

	app.Get("/ws/updates", websocket.New(handler.UpdatesConnection))
}
