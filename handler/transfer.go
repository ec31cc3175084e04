package handler

import (
	"fmt"
	"log"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/xuri/excelize/v2"

	"classroom_manager/constants"
	"classroom_manager/utils"
)

// ExportFile streams the whole state as the versioned JSON save file. The
// optional name query parameter picks the download filename.
func (h *Handler) ExportFile(c *fiber.Ctx) error {
	file := h.planner.BuildSaveFile()
	if len(file.Rooms) == 0 && len(file.Courses) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_DATA_TO_EXPORT, nil)
	}

	name := c.Query("name")
	if name == "" {
		name = "classroom_assignments_" + time.Now().Format("2006-01-02")
	}
	filename := slug.Make(name) + ".json"

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.JSON(file)
}

func (h *Handler) ExportCSV(c *fiber.Ctx) error {
	rows := h.planner.ExportRows()
	if len(rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_DATA_TO_EXPORT, nil)
	}

	content, err := gocsv.MarshalString(&rows)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EXPORT_FAILED, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="classroom-assignments.csv"`)
	return c.SendString(content)
}

var xlsxHeader = []interface{}{
	"Topic", "Type", "2023 Max Attendance", "2024 Max Attendance",
	"Average Attendance", "Previous Room", "Assigned Room",
	"Room Capacity", "Capacity %", "Status",
}

func (h *Handler) ExportXLSX(c *fiber.Ctx) error {
	rows := h.planner.ExportRows()
	if len(rows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_DATA_TO_EXPORT, nil)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing excel file: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EXPORT_FAILED, err)
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.Topic, row.Type, row.Max2023, row.Max2024,
			row.Average, row.PreviousRoom, row.AssignedRoom,
			row.RoomCapacity, row.CapacityPct, row.Status,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EXPORT_FAILED, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EXPORT_FAILED, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="classroom-assignments.xlsx"`)
	return c.Send(buf.Bytes())
}

// ImportFile replaces the whole state from an uploaded save file. A malformed
// document is rejected without touching the current state.
func (h *Handler) ImportFile(c *fiber.Ctx) error {
	payload := c.Body()
	if len(payload) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_FILE_FORMAT, nil)
	}

	file, err := h.planner.Import(payload)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.IMPORT_FAILED, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"version":      file.Version,
		"totalRooms":   len(file.Rooms),
		"totalCourses": len(file.Courses),
	})
}
