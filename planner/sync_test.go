package planner

import (
	"testing"

	"classroom_manager/model"
)

func TestSyncRebuildsBackReferences(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	stale := "Old Topic"
	room.AssignedTo = &stale

	course := testCourse("c1", "Gas Quality", 25)
	course.AssignedRoom = strp("Room 101")

	st := &model.State{
		Rooms:    []*model.Room{room},
		Courses:  []*model.Course{course},
		Settings: model.DefaultSettings(),
	}
	SyncAssignments(st)

	if room.AssignedTo == nil || *room.AssignedTo != "Gas Quality" {
		t.Fatalf("back reference = %v", room.AssignedTo)
	}
}

func TestSyncClearsDanglingBackReferences(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	ghost := "Ghost Course"
	room.AssignedTo = &ghost

	st := &model.State{
		Rooms:    []*model.Room{room},
		Settings: model.DefaultSettings(),
	}
	SyncAssignments(st)

	if room.AssignedTo != nil {
		t.Fatalf("dangling back reference survived: %v", *room.AssignedTo)
	}
}

// When two courses name the same room, the later one in course order wins the
// back-reference; the earlier forward reference is left in place.
func TestSyncDuplicateForwardRefsLastWins(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	first := testCourse("c1", "First", 25)
	first.AssignedRoom = strp("Room 101")
	second := testCourse("c2", "Second", 25)
	second.AssignedRoom = strp("Room 101")

	st := &model.State{
		Rooms:    []*model.Room{room},
		Courses:  []*model.Course{first, second},
		Settings: model.DefaultSettings(),
	}
	SyncAssignments(st)

	if room.AssignedTo == nil || *room.AssignedTo != "Second" {
		t.Fatalf("back reference = %v, want Second", room.AssignedTo)
	}
	if first.AssignedRoom == nil {
		t.Fatal("earlier forward reference was cleared")
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	course := testCourse("c1", "Gas Quality", 25)
	course.AssignedRoom = strp("Room 101")

	st := &model.State{
		Rooms:    []*model.Room{room},
		Courses:  []*model.Course{course},
		Settings: model.DefaultSettings(),
	}
	SyncAssignments(st)
	want := *room.AssignedTo
	SyncAssignments(st)

	if *room.AssignedTo != want {
		t.Fatalf("second sync changed the state: %q", *room.AssignedTo)
	}
}

func TestSyncLeavesAvailabilityAlone(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, false)
	course := testCourse("c1", "Gas Quality", 25)
	course.AssignedRoom = strp("Room 101")

	st := &model.State{
		Rooms:    []*model.Room{room},
		Courses:  []*model.Course{course},
		Settings: model.DefaultSettings(),
	}
	SyncAssignments(st)

	if room.Available {
		t.Fatal("sync flipped the availability flag")
	}
	if room.AssignedTo == nil {
		t.Fatal("sync skipped the unavailable room's back reference")
	}
}
