package model

type CourseType string

const (
	TypeLecture CourseType = "Lecture"
	TypeHandsOn CourseType = "Hands-On"
)

// Course mirrors the persisted record shape. AssignedRoom is the forward
// reference of the assignment relation and holds a room *name*, not an id;
// the join key is the display name on purpose (see DESIGN.md).
//
// MaxAttendance2023/2024 are the legacy fixed-year fields. AttendanceByYear
// is the sparse year map the migration pass derives from them. A nil map
// entry means the year was cleared; a missing key means it was never set.
type Course struct {
	ID                 string          `json:"id"`
	Topic              string          `json:"topic" validate:"required"`
	Type               CourseType      `json:"type" validate:"oneof=Lecture Hands-On"`
	ExpectedAttendance int             `json:"expectedAttendance" validate:"min=0"`
	AssignedRoom       *string         `json:"assignedRoom"`
	MaxAttendance2023  *int            `json:"maxAttendance2023"`
	MaxAttendance2024  *int            `json:"maxAttendance2024"`
	AvgAttendance      *int            `json:"avgAttendance"`
	PreviousRoom       *string         `json:"previousRoom"`
	AttendanceByYear   map[string]*int `json:"attendanceByYear,omitempty"`
}

// Clone returns a detached copy, including the attendance map, so callers
// can serialize it outside the planner's lock.
func (c *Course) Clone() *Course {
	cc := *c
	cc.AssignedRoom = clonedString(c.AssignedRoom)
	cc.MaxAttendance2023 = clonedInt(c.MaxAttendance2023)
	cc.MaxAttendance2024 = clonedInt(c.MaxAttendance2024)
	cc.AvgAttendance = clonedInt(c.AvgAttendance)
	cc.PreviousRoom = clonedString(c.PreviousRoom)
	if c.AttendanceByYear != nil {
		m := make(map[string]*int, len(c.AttendanceByYear))
		for year, v := range c.AttendanceByYear {
			m[year] = clonedInt(v)
		}
		cc.AttendanceByYear = m
	}
	return &cc
}

type CreateCourseInput struct {
	Topic              *string     `json:"topic"`
	Type               *CourseType `json:"type" validate:"omitempty,oneof=Lecture Hands-On"`
	ExpectedAttendance *int        `json:"expectedAttendance" validate:"omitempty,min=0"`
}

type CourseTopicInput struct {
	Topic string `json:"topic" validate:"required"`
}

type CourseTypeInput struct {
	Type CourseType `json:"type" validate:"required,oneof=Lecture Hands-On"`
}

type CourseExpectedInput struct {
	Expected int `json:"expected" validate:"min=0"`
}

type CoursePreviousRoomInput struct {
	PreviousRoom string `json:"previousRoom"`
}

type CourseAttendanceInput struct {
	Year  string `json:"year" validate:"required,len=4,numeric"`
	Value int    `json:"value" validate:"min=0"`
}
