package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"classroom_manager/model"
)

const saveFileVersion = "1.0"

// BuildSaveFile snapshots the whole state as the versioned export document.
func (p *Planner) BuildSaveFile() *model.SaveFile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buildSaveFileLocked()
}

func (p *Planner) buildSaveFileLocked() *model.SaveFile {
	s := p.state.Settings
	assigned := 0
	rooms := make([]*model.Room, 0, len(p.state.Rooms))
	for _, r := range p.state.Rooms {
		if r.AssignedTo != nil {
			assigned++
		}
		rooms = append(rooms, r.Clone())
	}
	courses := make([]*model.Course, 0, len(p.state.Courses))
	for _, c := range p.state.Courses {
		courses = append(courses, c.Clone())
	}
	return &model.SaveFile{
		Version:   saveFileVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Rooms:     rooms,
		Courses:   courses,
		Settings: &model.SaveSettings{
			AttendanceBase:    s.AttendanceBase,
			SelectedYear1:     s.SelectedYear1,
			SelectedYear2:     s.SelectedYear2,
			AGMSCYear:         s.ConferenceYear,
			RoomSortColumn:    s.RoomSortColumn,
			RoomSortDirection: s.RoomSortDirection,
		},
		Metadata: &model.SaveMetadata{
			TotalRooms:    len(p.state.Rooms),
			TotalCourses:  len(p.state.Courses),
			AssignedRooms: assigned,
			AGMSCYear:     s.ConferenceYear,
		},
	}
}

// Import replaces the whole state from a save-file document. The load is
// all-or-nothing: a malformed document leaves the current state untouched.
// Records missing an id get a fresh one; the migration pass and the
// back-reference sync run on the replacement before it becomes visible.
func (p *Planner) Import(payload []byte) (*model.SaveFile, error) {
	var file model.SaveFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("invalid file format: %w", err)
	}
	if file.Rooms == nil || file.Courses == nil {
		return nil, errors.New("invalid file format: rooms and courses are required")
	}

	next := &model.State{
		Rooms:    file.Rooms,
		Courses:  file.Courses,
		Settings: model.DefaultSettings(),
	}
	for _, r := range next.Rooms {
		if r == nil {
			return nil, errors.New("invalid file format: null room record")
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
	}
	for _, c := range next.Courses {
		if c == nil {
			return nil, errors.New("invalid file format: null course record")
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
	}

	if fs := file.Settings; fs != nil {
		if fs.AttendanceBase != "" {
			next.Settings.AttendanceBase = fs.AttendanceBase
		}
		if fs.SelectedYear1 != "" {
			next.Settings.SelectedYear1 = fs.SelectedYear1
		}
		if fs.SelectedYear2 != "" {
			next.Settings.SelectedYear2 = fs.SelectedYear2
		}
		if fs.AGMSCYear != "" {
			next.Settings.ConferenceYear = fs.AGMSCYear
		}
		next.Settings.RoomSortColumn = fs.RoomSortColumn
		if fs.RoomSortDirection != "" {
			next.Settings.RoomSortDirection = fs.RoomSortDirection
		}
	}

	Migrate(next)
	SyncAssignments(next)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = next
	p.persist()
	return &file, nil
}

// ExportRows flattens the course table into export rows, one per course in
// course-list order.
func (p *Planner) ExportRows() []*model.ExportRow {
	p.mu.Lock()
	defer p.mu.Unlock()

	rows := make([]*model.ExportRow, 0, len(p.state.Courses))
	for _, c := range p.state.Courses {
		room := p.assignedRoomOf(c)
		info := Evaluate(c, room, p.state.Settings.AttendanceBase)

		row := &model.ExportRow{
			Topic:        c.Topic,
			Type:         string(c.Type),
			Max2023:      intOrEmpty(c.MaxAttendance2023),
			Max2024:      intOrEmpty(c.MaxAttendance2024),
			Average:      intOrEmpty(c.AvgAttendance),
			AssignedRoom: "Not assigned",
			RoomCapacity: "N/A",
			CapacityPct:  info.Display,
			Status:       StatusText(c, room),
		}
		if c.PreviousRoom != nil {
			row.PreviousRoom = *c.PreviousRoom
		}
		if c.AssignedRoom != nil {
			row.AssignedRoom = *c.AssignedRoom
		}
		if room != nil {
			row.RoomCapacity = fmt.Sprintf("%d", room.Seats)
		}
		rows = append(rows, row)
	}
	return rows
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}
