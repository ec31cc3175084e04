package planner

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"classroom_manager/model"
)

// AddRoom appends a room with the default shape, fields overridden by the
// caller-provided values.
func (p *Planner) AddRoom(room *model.Room) *model.Room {
	p.mu.Lock()
	defer p.mu.Unlock()

	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	p.state.Rooms = append(p.state.Rooms, room)
	p.persist()
	return room.Clone()
}

// DeleteRoom removes a room, cascading: any course pointing at it loses its
// forward reference.
func (p *Planner) DeleteRoom(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	room := p.findRoom(id)
	if room == nil {
		return false
	}
	if room.AssignedTo != nil {
		for _, c := range p.state.Courses {
			if c.AssignedRoom != nil && *c.AssignedRoom == room.Name {
				c.AssignedRoom = nil
			}
		}
	}

	kept := p.state.Rooms[:0]
	for _, r := range p.state.Rooms {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	p.state.Rooms = kept

	p.persist()
	return true
}

// RenameRoom changes the display name only. Courses join rooms by name, so
// renaming an assigned room orphans the course's forward reference; that is
// the original tool's observable behavior and is kept as-is.
func (p *Planner) RenameRoom(id, name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	room := p.findRoom(id)
	if room == nil {
		return false
	}
	room.Name = name
	p.persist()
	return true
}

func (p *Planner) SetRoomBuilding(id, building string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	room := p.findRoom(id)
	if room == nil {
		return false
	}
	room.Building = building
	p.persist()
	return true
}

func (p *Planner) SetRoomSeats(id string, seats int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	room := p.findRoom(id)
	if room == nil {
		return false
	}
	if seats < 0 {
		seats = 0
	}
	room.Seats = seats
	p.persist()
	return true
}

func (p *Planner) SetRoomSeatType(id, seatType string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	room := p.findRoom(id)
	if room == nil {
		return false
	}
	room.SeatType = seatType
	p.persist()
	return true
}

func (p *Planner) SetRoomUsage(id string, usage model.RoomUsage) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	room := p.findRoom(id)
	if room == nil {
		return false
	}
	room.NormalUsage = usage
	p.persist()
	return true
}

// SetRoomAvailable flips the user-controlled availability flag. Marking an
// assigned room unavailable forcibly clears the assignment.
func (p *Planner) SetRoomAvailable(id string, available bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	room := p.findRoom(id)
	if room == nil {
		return false
	}
	if !available && room.AssignedTo != nil {
		p.clearRoomAssignment(room)
	}
	room.Available = available
	p.persist()
	return true
}

// SetRoomApproval applies the RMU decision. Denied unassigns the room and
// marks it unavailable. Approving a previously denied room does NOT restore
// availability; the user must re-enable it explicitly.
func (p *Planner) SetRoomApproval(id string, status model.RMUStatus) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	room := p.findRoom(id)
	if room == nil {
		return false
	}
	if status == model.RMUDenied {
		if room.AssignedTo != nil {
			p.clearRoomAssignment(room)
		}
		room.Available = false
	}
	room.RMUStatus = status
	p.persist()
	return true
}

// CheckAllAvailable marks every room available.
func (p *Planner) CheckAllAvailable() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, r := range p.state.Rooms {
		r.Available = true
	}
	p.persist()
}

// UncheckAllAvailable marks every room unavailable and clears any assignments
// held by the rooms it disables.
func (p *Planner) UncheckAllAvailable() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, r := range p.state.Rooms {
		r.Available = false
		if r.AssignedTo != nil {
			p.clearRoomAssignment(r)
		}
	}
	p.persist()
}

// SortRooms reorders the room list: same column toggles direction, a new
// column starts ascending. The order and direction persist with the state.
func (p *Planner) SortRooms(column string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := &p.state.Settings
	if s.RoomSortColumn == column {
		if s.RoomSortDirection == "asc" {
			s.RoomSortDirection = "desc"
		} else {
			s.RoomSortDirection = "asc"
		}
	} else {
		s.RoomSortColumn = column
		s.RoomSortDirection = "asc"
	}

	asc := s.RoomSortDirection == "asc"
	rooms := p.state.Rooms
	sort.SliceStable(rooms, func(i, j int) bool {
		less := roomLess(rooms[i], rooms[j], column)
		if asc {
			return less
		}
		return roomLess(rooms[j], rooms[i], column)
	})

	p.persist()
}

func roomLess(a, b *model.Room, column string) bool {
	switch column {
	case "available":
		return !a.Available && b.Available
	case "seats":
		return a.Seats < b.Seats
	case "rmuStatus":
		return strings.ToLower(string(statusOrApproved(a))) < strings.ToLower(string(statusOrApproved(b)))
	case "building":
		return strings.ToLower(a.Building) < strings.ToLower(b.Building)
	case "seatType":
		return strings.ToLower(a.SeatType) < strings.ToLower(b.SeatType)
	case "assigned":
		return strings.ToLower(assignedOrEmpty(a)) < strings.ToLower(assignedOrEmpty(b))
	case "name":
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	default:
		return false
	}
}

func statusOrApproved(r *model.Room) model.RMUStatus {
	if r.RMUStatus == "" {
		return model.RMUApproved
	}
	return r.RMUStatus
}

func assignedOrEmpty(r *model.Room) string {
	if r.AssignedTo == nil {
		return ""
	}
	return *r.AssignedTo
}

// clearRoomAssignment drops both sides of the link for one room. Caller
// keeps the lock.
func (p *Planner) clearRoomAssignment(room *model.Room) {
	for _, c := range p.state.Courses {
		if c.AssignedRoom != nil && *c.AssignedRoom == room.Name {
			c.AssignedRoom = nil
		}
	}
	room.AssignedTo = nil
}

// Rooms returns the room list annotated with usage classifications. The
// views carry detached copies so callers can serialize them after the lock
// is released.
func (p *Planner) Rooms() []*model.RoomView {
	p.mu.Lock()
	defer p.mu.Unlock()

	views := make([]*model.RoomView, 0, len(p.state.Rooms))
	for _, r := range p.state.Rooms {
		views = append(views, &model.RoomView{
			Room:  r.Clone(),
			Usage: UsagePattern(r, p.state.Courses),
		})
	}
	return views
}
