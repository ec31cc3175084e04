package planner

import (
	"errors"

	"classroom_manager/model"
)

// AssignResult reports how an assignment attempt ended.
type AssignResult int

const (
	// AssignNoCourse means no course with that id exists; nothing changed.
	AssignNoCourse AssignResult = iota
	// AssignNoRoom means no available room with that name exists; nothing
	// changed.
	AssignNoRoom
	AssignDone
	// AssignConflict means the room is occupied by another course and a
	// pending conflict was raised; nothing else changed.
	AssignConflict
)

// Assign links a course to a room by name. The target must be an available
// room; an occupied target raises a conflict instead of mutating anything.
// On success the course's previous room is released first, so the ledger
// invariant holds when the call returns.
func (p *Planner) Assign(courseID, roomName string) AssignResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	course := p.findCourse(courseID)
	if course == nil {
		return AssignNoCourse
	}
	room := p.findAvailableRoomByName(roomName)
	if room == nil {
		return AssignNoRoom
	}

	if room.AssignedTo != nil && *room.AssignedTo != course.Topic {
		p.state.Conflict = &model.Conflict{
			CourseID:    course.ID,
			CourseTopic: course.Topic,
			RoomID:      room.ID,
			RoomName:    room.Name,
			HeldBy:      *room.AssignedTo,
		}
		return AssignConflict
	}

	p.releaseCourseRoom(course)
	name := room.Name
	course.AssignedRoom = &name
	topic := course.Topic
	room.AssignedTo = &topic

	p.persist()
	return AssignDone
}

// Unassign clears both sides of a course's assignment. No-op when the course
// is missing or unassigned.
func (p *Planner) Unassign(courseID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	course := p.findCourse(courseID)
	if course == nil || course.AssignedRoom == nil {
		return false
	}
	p.releaseCourseRoom(course)
	course.AssignedRoom = nil

	p.persist()
	return true
}

// ForceAssign consumes the pending conflict: the course holding the contested
// room loses it and the pending assignment goes through. The incoming
// course's previous room is released as well so no stale back-reference
// survives the override.
func (p *Planner) ForceAssign() *model.Conflict {
	p.mu.Lock()
	defer p.mu.Unlock()

	conflict := p.state.Conflict
	if conflict == nil {
		return nil
	}
	p.state.Conflict = nil

	course := p.findCourse(conflict.CourseID)
	room := p.findRoom(conflict.RoomID)
	if course == nil || room == nil {
		return conflict
	}

	if room.AssignedTo != nil {
		if prev := p.findCourseByTopic(*room.AssignedTo); prev != nil {
			prev.AssignedRoom = nil
		}
	}

	p.releaseCourseRoom(course)
	name := room.Name
	course.AssignedRoom = &name
	topic := course.Topic
	room.AssignedTo = &topic

	p.persist()
	return conflict
}

// ResolveConflict discards the pending conflict without touching any
// assignment.
func (p *Planner) ResolveConflict() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.Conflict == nil {
		return false
	}
	p.state.Conflict = nil
	return true
}

// Swap exchanges the rooms of two courses as one atomic operation. Each
// course's own room is deliberately not conflict-checked against itself.
func (p *Planner) Swap(courseID1, courseID2 string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	c1 := p.findCourse(courseID1)
	c2 := p.findCourse(courseID2)
	if c1 == nil || c2 == nil {
		return errors.New("course not found")
	}
	if c1.AssignedRoom == nil || c2.AssignedRoom == nil {
		return errors.New("both courses must have room assignments to swap")
	}

	r1 := p.findRoomByName(*c1.AssignedRoom)
	r2 := p.findRoomByName(*c2.AssignedRoom)

	c1.AssignedRoom, c2.AssignedRoom = c2.AssignedRoom, c1.AssignedRoom
	if r1 != nil {
		topic := c2.Topic
		r1.AssignedTo = &topic
	}
	if r2 != nil {
		topic := c1.Topic
		r2.AssignedTo = &topic
	}

	p.persist()
	return nil
}

// releaseCourseRoom clears the back-reference of the room the course
// currently holds. Caller keeps the lock.
func (p *Planner) releaseCourseRoom(course *model.Course) {
	if course.AssignedRoom == nil {
		return
	}
	if prev := p.findRoomByName(*course.AssignedRoom); prev != nil {
		prev.AssignedTo = nil
	}
}
