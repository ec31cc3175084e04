package planner

import (
	"testing"

	"classroom_manager/model"
)

func TestAssignLinksBothSides(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	course := testCourse("c1", "Gas Quality", 25)
	p := testPlanner([]*model.Room{room}, []*model.Course{course})

	if got := p.Assign("c1", "Room 101"); got != AssignDone {
		t.Fatalf("Assign = %v, want AssignDone", got)
	}
	if course.AssignedRoom == nil || *course.AssignedRoom != "Room 101" {
		t.Fatalf("forward reference = %v", course.AssignedRoom)
	}
	if room.AssignedTo == nil || *room.AssignedTo != "Gas Quality" {
		t.Fatalf("back reference = %v", room.AssignedTo)
	}
}

func TestAssignUnavailableRoomIsNoop(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, false)
	course := testCourse("c1", "Gas Quality", 25)
	p := testPlanner([]*model.Room{room}, []*model.Course{course})

	if got := p.Assign("c1", "Room 101"); got != AssignNoRoom {
		t.Fatalf("Assign = %v, want AssignNoRoom", got)
	}
	if course.AssignedRoom != nil {
		t.Fatal("noop assign mutated the course")
	}
}

func TestAssignUnknownCourseIsNoop(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	p := testPlanner([]*model.Room{room}, nil)

	if got := p.Assign("ghost", "Room 101"); got != AssignNoCourse {
		t.Fatalf("Assign = %v, want AssignNoCourse", got)
	}
	if room.AssignedTo != nil {
		t.Fatal("noop assign mutated the room")
	}
}

func TestAssignMovesCourseBetweenRooms(t *testing.T) {
	r1 := testRoom("r1", "Room 101", 50, true)
	r2 := testRoom("r2", "Room 102", 50, true)
	course := testCourse("c1", "Gas Quality", 25)
	p := testPlanner([]*model.Room{r1, r2}, []*model.Course{course})

	p.Assign("c1", "Room 101")
	p.Assign("c1", "Room 102")

	if r1.AssignedTo != nil {
		t.Fatalf("old room still holds %v", r1.AssignedTo)
	}
	if r2.AssignedTo == nil || *r2.AssignedTo != "Gas Quality" {
		t.Fatalf("new room back reference = %v", r2.AssignedTo)
	}
}

func TestAssignOccupiedRoomRaisesConflict(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	holder := testCourse("c1", "Gas Quality", 25)
	incoming := testCourse("c2", "Demo 1", 30)
	p := testPlanner([]*model.Room{room}, []*model.Course{holder, incoming})
	p.Assign("c1", "Room 101")

	if got := p.Assign("c2", "Room 101"); got != AssignConflict {
		t.Fatalf("Assign = %v, want AssignConflict", got)
	}

	conflict := p.Conflict()
	if conflict == nil {
		t.Fatal("no pending conflict")
	}
	if conflict.CourseID != "c2" || conflict.RoomName != "Room 101" || conflict.HeldBy != "Gas Quality" {
		t.Fatalf("conflict = %+v", conflict)
	}
	// Nothing moved yet.
	if *room.AssignedTo != "Gas Quality" {
		t.Fatalf("room changed hands during conflict: %v", *room.AssignedTo)
	}
	if incoming.AssignedRoom != nil {
		t.Fatal("incoming course assigned during conflict")
	}
}

func TestForceAssignTransfersRoom(t *testing.T) {
	contested := testRoom("r1", "Room 101", 50, true)
	other := testRoom("r2", "Room 102", 50, true)
	holder := testCourse("c1", "Gas Quality", 25)
	incoming := testCourse("c2", "Demo 1", 30)
	p := testPlanner([]*model.Room{contested, other}, []*model.Course{holder, incoming})

	p.Assign("c1", "Room 101")
	p.Assign("c2", "Room 102")
	p.Assign("c2", "Room 101")

	consumed := p.ForceAssign()
	if consumed == nil {
		t.Fatal("ForceAssign returned nil with a pending conflict")
	}
	if p.Conflict() != nil {
		t.Fatal("conflict not consumed")
	}
	if holder.AssignedRoom != nil {
		t.Fatalf("displaced course still assigned to %v", *holder.AssignedRoom)
	}
	if incoming.AssignedRoom == nil || *incoming.AssignedRoom != "Room 101" {
		t.Fatalf("incoming course forward reference = %v", incoming.AssignedRoom)
	}
	if *contested.AssignedTo != "Demo 1" {
		t.Fatalf("contested room held by %v", *contested.AssignedTo)
	}
	// The incoming course's old room must be released too.
	if other.AssignedTo != nil {
		t.Fatalf("previous room still holds %v", *other.AssignedTo)
	}
}

func TestForceAssignWithoutConflict(t *testing.T) {
	p := testPlanner(nil, nil)
	if got := p.ForceAssign(); got != nil {
		t.Fatalf("ForceAssign = %+v, want nil", got)
	}
}

func TestCancelConflictLeavesAssignments(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	holder := testCourse("c1", "Gas Quality", 25)
	incoming := testCourse("c2", "Demo 1", 30)
	p := testPlanner([]*model.Room{room}, []*model.Course{holder, incoming})

	p.Assign("c1", "Room 101")
	p.Assign("c2", "Room 101")

	if !p.ResolveConflict() {
		t.Fatal("ResolveConflict = false with a pending conflict")
	}
	if p.Conflict() != nil {
		t.Fatal("conflict survived cancellation")
	}
	if *room.AssignedTo != "Gas Quality" {
		t.Fatalf("cancellation changed the holder: %v", *room.AssignedTo)
	}
	if p.ResolveConflict() {
		t.Fatal("ResolveConflict = true with no pending conflict")
	}
}

func TestUnassign(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	course := testCourse("c1", "Gas Quality", 25)
	p := testPlanner([]*model.Room{room}, []*model.Course{course})
	p.Assign("c1", "Room 101")

	if !p.Unassign("c1") {
		t.Fatal("Unassign = false for an assigned course")
	}
	if course.AssignedRoom != nil || room.AssignedTo != nil {
		t.Fatal("assignment not fully cleared")
	}
	if p.Unassign("c1") {
		t.Fatal("Unassign = true for an unassigned course")
	}
}

func TestSwapExchangesRooms(t *testing.T) {
	r1 := testRoom("r1", "Room 101", 50, true)
	r2 := testRoom("r2", "Room 102", 80, true)
	c1 := testCourse("c1", "Gas Quality", 25)
	c2 := testCourse("c2", "Demo 1", 60)
	p := testPlanner([]*model.Room{r1, r2}, []*model.Course{c1, c2})
	p.Assign("c1", "Room 101")
	p.Assign("c2", "Room 102")

	if err := p.Swap("c1", "c2"); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if *c1.AssignedRoom != "Room 102" || *c2.AssignedRoom != "Room 101" {
		t.Fatalf("forward refs after swap: %v, %v", *c1.AssignedRoom, *c2.AssignedRoom)
	}
	if *r1.AssignedTo != "Demo 1" || *r2.AssignedTo != "Gas Quality" {
		t.Fatalf("back refs after swap: %v, %v", *r1.AssignedTo, *r2.AssignedTo)
	}
}

func TestSwapRequiresBothAssigned(t *testing.T) {
	r1 := testRoom("r1", "Room 101", 50, true)
	c1 := testCourse("c1", "Gas Quality", 25)
	c2 := testCourse("c2", "Demo 1", 60)
	p := testPlanner([]*model.Room{r1}, []*model.Course{c1, c2})
	p.Assign("c1", "Room 101")

	if err := p.Swap("c1", "c2"); err == nil {
		t.Fatal("Swap succeeded with an unassigned course")
	}
	if *c1.AssignedRoom != "Room 101" {
		t.Fatalf("failed swap mutated state: %v", *c1.AssignedRoom)
	}
	if err := p.Swap("c1", "missing"); err == nil {
		t.Fatal("Swap succeeded with a missing course")
	}
}
