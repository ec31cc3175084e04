package planner

import (
	"fmt"
	"math"

	"classroom_manager/model"
)

// Evaluate computes the utilization readout for the assignment view, driven
// by the configured attendance basis. Thresholds: <=89% ok, 90-100% warning,
// >100% over. A zero-seat room is always over capacity with an undefined
// percentage.
func Evaluate(c *model.Course, room *model.Room, base string) model.CapacityInfo {
	if room == nil {
		return model.CapacityInfo{Text: "No room assigned", Display: "N/A"}
	}

	attendance := EffectiveAttendance(c, base)
	if room.Seats == 0 {
		return model.CapacityInfo{
			Class:   "capacity-over",
			Text:    "∞% over capacity",
			Display: "∞%",
		}
	}

	pct := int(math.Round(float64(attendance) / float64(room.Seats) * 100))
	info := model.CapacityInfo{
		Percentage: &pct,
		Display:    fmt.Sprintf("%d%%", pct),
	}
	switch {
	case pct <= 89:
		info.Class = "capacity-ok"
		info.Text = fmt.Sprintf("%d%% capacity", pct)
	case pct <= 100:
		info.Class = "capacity-warning"
		info.Text = fmt.Sprintf("%d%% capacity", pct)
	default:
		info.Class = "capacity-over"
		info.Text = fmt.Sprintf("%d%% over capacity", pct)
	}
	return info
}

// StatusBadge is the second, independently computed status used for badges
// and reports. It deliberately reads ExpectedAttendance, not the basis-driven
// effective figure, and uses the >100 / >90 thresholds.
func StatusBadge(c *model.Course, room *model.Room) string {
	if c.AssignedRoom == nil {
		return "status-unassigned"
	}
	if room == nil {
		return "status-error"
	}
	switch expectedBand(c, room) {
	case bandOver:
		return "status-over"
	case bandNear:
		return "status-warning"
	default:
		return "status-ok"
	}
}

func StatusText(c *model.Course, room *model.Room) string {
	if c.AssignedRoom == nil {
		return "Unassigned"
	}
	if room == nil {
		return "Room not found"
	}
	switch expectedBand(c, room) {
	case bandOver:
		return "Over capacity"
	case bandNear:
		return "Near capacity"
	default:
		return "OK"
	}
}

type capacityBand int

const (
	bandOK capacityBand = iota
	bandNear
	bandOver
)

func expectedBand(c *model.Course, room *model.Room) capacityBand {
	if room.Seats == 0 {
		// Zero expected against zero seats reads as OK, anything else is
		// over (the ratio is undefined, not merely large).
		if c.ExpectedAttendance > 0 {
			return bandOver
		}
		return bandOK
	}
	pct := float64(c.ExpectedAttendance) / float64(room.Seats) * 100
	if pct > 100 {
		return bandOver
	}
	if pct > 90 {
		return bandNear
	}
	return bandOK
}

// overCapacity reports whether a course overflows its assigned room, the
// expected-attendance ratio the summary and report count issues with.
func overCapacity(c *model.Course, room *model.Room) bool {
	if room == nil {
		return false
	}
	if room.Seats == 0 {
		return c.ExpectedAttendance > 0
	}
	return float64(c.ExpectedAttendance)/float64(room.Seats) > 1
}
