package planner

import "classroom_manager/model"

// Topics that force a room's usage classification regardless of the course
// type mix. These come from the conference program committee.
var lectureOrientedTopics = map[string]bool{
	"NGL/Wet Gas":                   true,
	"Advanced Metering-High Volume": true,
	"Current Industry Topics":       true,
	"Instrumentation & Automation":  true,
	"General Topics":                true,
	"Production & Storage":          true,
	"Gas Quality":                   true,
}

var handsOnOrientedTopics = map[string]bool{
	"Demo 1":          true,
	"Demo 2":          true,
	"Demo 6":          true,
	"Outdoor Exhibit": true,
}

// UsagePattern classifies how a room is normally used. The stored field wins;
// the dynamic inference below only fires for legacy data the migration pass
// has not touched (and for rooms with no stored value and no assignments,
// where it reports unset).
func UsagePattern(r *model.Room, courses []*model.Course) model.RoomUsage {
	if r.NormalUsage != model.UsageUnset {
		return r.NormalUsage
	}

	var assigned []*model.Course
	for _, c := range courses {
		if c.AssignedRoom != nil && *c.AssignedRoom == r.Name {
			assigned = append(assigned, c)
		}
	}
	if len(assigned) == 0 {
		return model.UsageUnset
	}

	for _, c := range assigned {
		if lectureOrientedTopics[c.Topic] {
			return model.UsageLecture
		}
	}
	for _, c := range assigned {
		if handsOnOrientedTopics[c.Topic] {
			return model.UsageHandsOn
		}
	}

	lectures, handsOn := 0, 0
	for _, c := range assigned {
		if c.Type == model.TypeHandsOn {
			handsOn++
		} else {
			lectures++
		}
	}
	if handsOn > lectures {
		return model.UsageHandsOn
	}
	// Tie breaks to lecture.
	return model.UsageLecture
}
