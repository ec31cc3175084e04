package planner

import "classroom_manager/model"

// Migrate runs the one-time normalization pass over freshly loaded or
// imported state. It replaces the original tool's lazy migrate-on-read:
// after Migrate, every read path is side-effect free.
//
//   - courses: materialize the sparse attendance map from the legacy
//     fixed-year fields and recompute the stored average for the currently
//     selected comparison years
//   - rooms: backfill the normal-usage classification for legacy records and
//     drop the obsolete autoManage flag
func Migrate(st *model.State) {
	for _, c := range st.Courses {
		if c.AttendanceByYear == nil {
			c.AttendanceByYear = map[string]*int{}
			if c.MaxAttendance2023 != nil {
				c.AttendanceByYear["2023"] = c.MaxAttendance2023
			}
			if c.MaxAttendance2024 != nil {
				c.AttendanceByYear["2024"] = c.MaxAttendance2024
			}
		}
		c.AvgAttendance = AverageAttendance(c, st.Settings.SelectedYear1, st.Settings.SelectedYear2)
	}

	for _, r := range st.Rooms {
		if r.NormalUsage == model.UsageUnset {
			r.NormalUsage = inferNormalUsage(r, st.Courses)
		}
		r.AutoManage = nil
	}
}

// inferNormalUsage is the legacy-data backfill: allow-listed topics decide
// first, then the furniture heuristic, defaulting to lecture.
func inferNormalUsage(r *model.Room, courses []*model.Course) model.RoomUsage {
	var assigned *model.Course
	for _, c := range courses {
		if c.AssignedRoom != nil && *c.AssignedRoom == r.Name {
			assigned = c
			break
		}
	}

	if assigned != nil {
		if lectureOrientedTopics[assigned.Topic] {
			return model.UsageLecture
		}
		if handsOnOrientedTopics[assigned.Topic] {
			return model.UsageHandsOn
		}
	}
	if r.SeatType == "Tables" || r.SeatType == "PC Lab Tables" {
		if assigned != nil && assigned.Type == model.TypeHandsOn {
			return model.UsageHandsOn
		}
		return model.UsageLecture
	}
	return model.UsageLecture
}
