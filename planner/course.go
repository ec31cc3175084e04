package planner

import (
	"github.com/google/uuid"

	"classroom_manager/model"
)

// AddCourse appends a course with the default shape, fields overridden by
// the caller-provided values.
func (p *Planner) AddCourse(course *model.Course) *model.Course {
	p.mu.Lock()
	defer p.mu.Unlock()

	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.AttendanceByYear == nil {
		course.AttendanceByYear = map[string]*int{}
	}
	p.state.Courses = append(p.state.Courses, course)
	p.persist()
	return course.Clone()
}

// DeleteCourse removes a course, freeing the referenced room's
// back-reference.
func (p *Planner) DeleteCourse(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	course := p.findCourse(id)
	if course == nil {
		return false
	}
	p.releaseCourseRoom(course)

	kept := p.state.Courses[:0]
	for _, c := range p.state.Courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	p.state.Courses = kept

	p.persist()
	return true
}

// SetCourseTopic changes the display topic only. Rooms hold the occupying
// course by topic string, so a rename leaves the room's back-reference stale
// until the next bulk sync; the original tool behaves the same way.
func (p *Planner) SetCourseTopic(id, topic string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	course := p.findCourse(id)
	if course == nil {
		return false
	}
	course.Topic = topic
	p.persist()
	return true
}

func (p *Planner) SetCourseType(id string, ct model.CourseType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	course := p.findCourse(id)
	if course == nil {
		return false
	}
	course.Type = ct
	p.persist()
	return true
}

func (p *Planner) SetCourseExpected(id string, expected int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	course := p.findCourse(id)
	if course == nil {
		return false
	}
	if expected < 0 {
		expected = 0
	}
	course.ExpectedAttendance = expected
	p.persist()
	return true
}

func (p *Planner) SetCoursePreviousRoom(id, previous string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	course := p.findCourse(id)
	if course == nil {
		return false
	}
	if previous == "" {
		course.PreviousRoom = nil
	} else {
		course.PreviousRoom = &previous
	}
	p.persist()
	return true
}

// SetCourseAttendance records a year's max attendance in the sparse map and
// recomputes the stored average. Zero clears the year, mirroring the
// original's empty-cell handling.
func (p *Planner) SetCourseAttendance(id, year string, value int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	course := p.findCourse(id)
	if course == nil {
		return false
	}
	if course.AttendanceByYear == nil {
		course.AttendanceByYear = map[string]*int{}
	}
	if value <= 0 {
		course.AttendanceByYear[year] = nil
	} else {
		v := value
		course.AttendanceByYear[year] = &v
	}
	course.AvgAttendance = AverageAttendance(course, p.state.Settings.SelectedYear1, p.state.Settings.SelectedYear2)

	p.persist()
	return true
}

// SetAttendanceBase switches the basis used for all capacity math.
func (p *Planner) SetAttendanceBase(base string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Settings.AttendanceBase = base
	p.persist()
}

// SetComparisonYears switches the two year columns and recomputes every
// course's stored average against them.
func (p *Planner) SetComparisonYears(year1, year2 string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Settings.SelectedYear1 = year1
	p.state.Settings.SelectedYear2 = year2
	for _, c := range p.state.Courses {
		c.AvgAttendance = AverageAttendance(c, year1, year2)
	}
	p.persist()
}

func (p *Planner) SetConferenceYear(year string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Settings.ConferenceYear = year
	p.persist()
}

// Courses returns the course list annotated with every derived display
// value, in course-list order. The views carry detached copies so callers
// can serialize them after the lock is released.
func (p *Planner) Courses() []*model.CourseView {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.state.Settings
	views := make([]*model.CourseView, 0, len(p.state.Courses))
	for _, c := range p.state.Courses {
		room := p.assignedRoomOf(c)
		view := &model.CourseView{
			Course:          c.Clone(),
			Year1Attendance: AttendanceForYear(c, s.SelectedYear1),
			Year2Attendance: AttendanceForYear(c, s.SelectedYear2),
			Average:         AverageAttendance(c, s.SelectedYear1, s.SelectedYear2),
			Effective:       EffectiveAttendance(c, s.AttendanceBase),
			Capacity:        Evaluate(c, room, s.AttendanceBase),
			StatusBadge:     StatusBadge(c, room),
			StatusText:      StatusText(c, room),
		}
		if room != nil {
			seats := room.Seats
			view.RoomSeats = &seats
		}
		views = append(views, view)
	}
	return views
}

// assignedRoomOf resolves a course's forward reference, nil when unassigned
// or orphaned. Caller keeps the lock.
func (p *Planner) assignedRoomOf(c *model.Course) *model.Room {
	if c.AssignedRoom == nil {
		return nil
	}
	return p.findRoomByName(*c.AssignedRoom)
}
