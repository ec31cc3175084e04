package planner

import (
	"testing"

	"classroom_manager/model"
)

func TestSetCourseAttendanceRecomputesAverage(t *testing.T) {
	course := testCourse("c1", "Gas Quality", 25)
	p := testPlanner(nil, []*model.Course{course})

	p.SetCourseAttendance("c1", "2023", 58)
	p.SetCourseAttendance("c1", "2024", 90)

	if course.AvgAttendance == nil || *course.AvgAttendance != 74 {
		t.Fatalf("average = %v, want 74", course.AvgAttendance)
	}

	// Zero clears the year and the average follows.
	p.SetCourseAttendance("c1", "2023", 0)
	if course.AttendanceByYear["2023"] != nil {
		t.Fatal("zero did not clear the year entry")
	}
	if course.AvgAttendance == nil || *course.AvgAttendance != 90 {
		t.Fatalf("average after clear = %v, want 90", course.AvgAttendance)
	}
}

func TestSetComparisonYearsRecomputesAllAverages(t *testing.T) {
	c1 := testCourse("c1", "Gas Quality", 25)
	c1.AttendanceByYear["2022"] = intp(40)
	c1.AttendanceByYear["2024"] = intp(90)
	c2 := testCourse("c2", "Demo 1", 30)
	c2.AttendanceByYear["2022"] = intp(10)
	p := testPlanner(nil, []*model.Course{c1, c2})

	p.SetComparisonYears("2022", "2024")

	if c1.AvgAttendance == nil || *c1.AvgAttendance != 65 {
		t.Fatalf("c1 average = %v, want 65", c1.AvgAttendance)
	}
	if c2.AvgAttendance == nil || *c2.AvgAttendance != 10 {
		t.Fatalf("c2 average = %v, want 10", c2.AvgAttendance)
	}
	if p.Settings().SelectedYear1 != "2022" {
		t.Fatalf("year1 = %q", p.Settings().SelectedYear1)
	}
}

func TestDeleteCourseFreesRoom(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	course := testCourse("c1", "Gas Quality", 25)
	p := testPlanner([]*model.Room{room}, []*model.Course{course})
	p.Assign("c1", "Room 101")

	if !p.DeleteCourse("c1") {
		t.Fatal("DeleteCourse = false")
	}
	if len(p.state.Courses) != 0 {
		t.Fatal("course not removed")
	}
	if room.AssignedTo != nil {
		t.Fatal("room still holds the deleted course")
	}
}

// Rooms hold the occupying course by topic, and a topic rename does not
// rewrite them; the stale back-reference stands until the next bulk sync.
func TestSetCourseTopicLeavesStaleBackReference(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	course := testCourse("c1", "Gas Quality", 25)
	p := testPlanner([]*model.Room{room}, []*model.Course{course})
	p.Assign("c1", "Room 101")

	p.SetCourseTopic("c1", "Gas Quality II")

	if *room.AssignedTo != "Gas Quality" {
		t.Fatalf("back reference rewritten early: %q", *room.AssignedTo)
	}

	p.Sync()
	if *room.AssignedTo != "Gas Quality II" {
		t.Fatalf("sync did not refresh the back reference: %q", *room.AssignedTo)
	}
}

func TestCourseViewAnnotations(t *testing.T) {
	room := testRoom("r1", "Room 101", 100, true)
	course := testCourse("c1", "Gas Quality", 25)
	course.MaxAttendance2024 = intp(90)
	course.AttendanceByYear["2024"] = intp(90)
	p := testPlanner([]*model.Room{room}, []*model.Course{course})
	p.Assign("c1", "Room 101")

	views := p.Courses()
	if len(views) != 1 {
		t.Fatalf("got %d views", len(views))
	}
	v := views[0]
	if v.Effective != 90 {
		t.Fatalf("effective = %d, want 90", v.Effective)
	}
	if v.RoomSeats == nil || *v.RoomSeats != 100 {
		t.Fatalf("room seats = %v", v.RoomSeats)
	}
	if v.Capacity.Class != "capacity-warning" {
		t.Fatalf("capacity class = %q", v.Capacity.Class)
	}
	if v.StatusText != "OK" {
		t.Fatalf("status = %q", v.StatusText)
	}
}

func TestSetCourseExpectedClampsNegative(t *testing.T) {
	course := testCourse("c1", "Gas Quality", 25)
	p := testPlanner(nil, []*model.Course{course})

	p.SetCourseExpected("c1", -5)
	if course.ExpectedAttendance != 0 {
		t.Fatalf("expected = %d, want 0", course.ExpectedAttendance)
	}
}
