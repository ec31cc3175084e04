package model

type RMUStatus string

const (
	RMUApproved    RMUStatus = "Approved"
	RMUDenied      RMUStatus = "Denied"
	RMUPending     RMUStatus = "Pending"
	RMUConditional RMUStatus = "Conditional"
)

type RoomUsage string

const (
	UsageLecture RoomUsage = "lecture"
	UsageHandsOn RoomUsage = "hands-on"
	UsageUnset   RoomUsage = ""
)

// Room mirrors the persisted record shape. AssignedTo is the back-reference
// side of the assignment relation and holds the occupying course's topic.
type Room struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Building    string    `json:"building"`
	Seats       int       `json:"seats" validate:"min=0"`
	SeatType    string    `json:"seatType"`
	Available   bool      `json:"available"`
	RMUStatus   RMUStatus `json:"rmuStatus"`
	AssignedTo  *string   `json:"assignedTo"`
	NormalUsage RoomUsage `json:"normalUsage,omitempty"`
	// AutoManage is a legacy field, removed by the migration pass at load.
	AutoManage *bool `json:"autoManage,omitempty"`
}

// Clone returns a detached copy that stays stable while the live record
// keeps mutating, so callers can serialize it outside the planner's lock.
func (r *Room) Clone() *Room {
	c := *r
	c.AssignedTo = clonedString(r.AssignedTo)
	if r.AutoManage != nil {
		v := *r.AutoManage
		c.AutoManage = &v
	}
	return &c
}

type CreateRoomInput struct {
	Name     *string `json:"name"`
	Building *string `json:"building"`
	Seats    *int    `json:"seats" validate:"omitempty,min=0"`
	SeatType *string `json:"seatType"`
}

type RenameRoomInput struct {
	Name string `json:"name" validate:"required"`
}

type RoomBuildingInput struct {
	Building string `json:"building" validate:"required"`
}

type RoomSeatsInput struct {
	Seats int `json:"seats" validate:"min=0"`
}

type RoomSeatTypeInput struct {
	SeatType string `json:"seatType" validate:"required"`
}

type RoomAvailableInput struct {
	Available *bool `json:"available" validate:"required"`
}

type RoomApprovalInput struct {
	Status RMUStatus `json:"status" validate:"required,oneof=Approved Denied Pending Conditional"`
}

type RoomUsageInput struct {
	Usage RoomUsage `json:"usage" validate:"required,oneof=lecture hands-on"`
}

type RoomSortInput struct {
	Column string `json:"column" validate:"required,oneof=available rmuStatus name building seats seatType assigned"`
}
