package model

// State is the whole mutable world of the planner: both sides of the
// assignment relation, the display settings and the (at most one) pending
// conflict. The Planner is the only sanctioned mutator.
type State struct {
	Rooms    []*Room
	Courses  []*Course
	Settings Settings
	Conflict *Conflict
}

// Conflict is a pending double-assignment awaiting an explicit force/cancel
// decision. HeldBy is the topic of the course currently occupying the room.
type Conflict struct {
	CourseID    string `json:"courseId"`
	CourseTopic string `json:"courseTopic"`
	RoomID      string `json:"roomId"`
	RoomName    string `json:"roomName"`
	HeldBy      string `json:"heldBy"`
}

type AssignInput struct {
	CourseID string `json:"courseId" validate:"required"`
	RoomName string `json:"roomName" validate:"required"`
}

type SwapInput struct {
	CourseID1 string `json:"courseId1" validate:"required"`
	CourseID2 string `json:"courseId2" validate:"required"`
}

// Summary feeds the dashboard counters.
type Summary struct {
	AvailableRooms      int `json:"availableRooms"`
	AssignedRooms       int `json:"assignedRooms"`
	UnassignedRooms     int `json:"unassignedRooms"`
	CoursesWithoutRooms int `json:"coursesWithoutRooms"`
	CapacityIssues      int `json:"capacityIssues"`
}

// CapacityInfo is the utilization readout driven by the configured
// attendance basis. Percentage is nil when no room is assigned or the room
// has zero seats (the percentage is undefined, the text shows it as such).
type CapacityInfo struct {
	Class      string `json:"class"`
	Text       string `json:"text"`
	Percentage *int   `json:"percentage"`
	Display    string `json:"display"`
}

// CourseView is a course annotated with everything the table renders.
type CourseView struct {
	*Course
	Year1Attendance *int         `json:"year1Attendance"`
	Year2Attendance *int         `json:"year2Attendance"`
	Average         *int         `json:"average"`
	Effective       int          `json:"effective"`
	RoomSeats       *int         `json:"roomSeats"`
	Capacity        CapacityInfo `json:"capacity"`
	StatusBadge     string       `json:"statusBadge"`
	StatusText      string       `json:"statusText"`
}

// RoomView is a room annotated with its usage classification.
type RoomView struct {
	*Room
	Usage RoomUsage `json:"usage"`
}

func clonedString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func clonedInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
