package planner

import (
	"fmt"
	"sort"
	"time"

	"classroom_manager/model"
)

// Summary computes the dashboard counters.
func (p *Planner) Summary() model.Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.summaryLocked()
}

func (p *Planner) summaryLocked() model.Summary {
	var s model.Summary
	for _, r := range p.state.Rooms {
		if r.Available {
			s.AvailableRooms++
		}
		if r.AssignedTo != nil {
			s.AssignedRooms++
		}
	}
	s.UnassignedRooms = s.AvailableRooms - s.AssignedRooms
	for _, c := range p.state.Courses {
		if c.AssignedRoom == nil {
			s.CoursesWithoutRooms++
			continue
		}
		if overCapacity(c, p.assignedRoomOf(c)) {
			s.CapacityIssues++
		}
	}
	return s
}

// Report assembles the printable assignment report document.
func (p *Planner) Report() model.Report {
	p.mu.Lock()
	defer p.mu.Unlock()

	year := p.state.Settings.ConferenceYear
	if year == "" {
		year = fmt.Sprintf("%d", time.Now().Year())
	}

	rep := model.Report{
		Title:          fmt.Sprintf("AGMSC %s Classroom Assignment Report", year),
		GeneratedOn:    time.Now().Format("1/2/2006"),
		ConferenceYear: year,
	}

	sum := p.summaryLocked()
	rep.Summary = model.ReportSummary{
		TotalRooms:          len(p.state.Rooms),
		AssignedRooms:       sum.AssignedRooms,
		TotalCourses:        len(p.state.Courses),
		CoursesWithoutRooms: sum.CoursesWithoutRooms,
		CapacityIssues:      sum.CapacityIssues,
	}
	for _, c := range p.state.Courses {
		if c.Type == model.TypeHandsOn {
			rep.Summary.HandsOnCount++
		} else {
			rep.Summary.LectureCount++
		}
	}

	rep.RoomsByBuilding = p.roomInventory()
	rep.HistoricalData = p.historicalData()
	rep.AssignedLecture = p.assignedByBuilding(model.TypeLecture)
	rep.AssignedHandsOn = p.assignedByBuilding(model.TypeHandsOn)
	rep.LectureCourses = p.courseRows(model.TypeLecture)
	rep.HandsOnCourses = p.courseRows(model.TypeHandsOn)
	rep.CapacityAnalysis = p.capacityAnalysis()
	return rep
}

func (p *Planner) roomInventory() []model.BuildingRooms {
	grouped := map[string][]*model.Room{}
	for _, r := range p.state.Rooms {
		grouped[r.Building] = append(grouped[r.Building], r)
	}

	buildings := make([]string, 0, len(grouped))
	for b := range grouped {
		buildings = append(buildings, b)
	}
	sort.Strings(buildings)

	out := make([]model.BuildingRooms, 0, len(buildings))
	for _, b := range buildings {
		rooms := grouped[b]
		sort.Slice(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })

		section := model.BuildingRooms{Building: b}
		for _, r := range rooms {
			status := "Unavailable"
			if r.AssignedTo != nil {
				status = "Assigned"
			} else if r.Available {
				status = "Available"
			}
			row := model.ReportRoom{
				Name:       r.Name,
				Seats:      r.Seats,
				SeatType:   r.SeatType,
				Status:     status,
				AssignedTo: strOrDash(r.AssignedTo),
				CourseType: "-",
			}
			for _, c := range p.state.Courses {
				if c.AssignedRoom != nil && *c.AssignedRoom == r.Name {
					row.CourseType = string(c.Type)
					break
				}
			}
			section.Rooms = append(section.Rooms, row)
		}
		out = append(out, section)
	}
	return out
}

func (p *Planner) historicalData() []model.HistoricalRow {
	rows := make([]model.HistoricalRow, 0, len(p.state.Courses))
	for _, c := range p.state.Courses {
		row := model.HistoricalRow{
			Topic:        c.Topic,
			Type:         string(c.Type),
			Max2023:      intOrNA(c.MaxAttendance2023),
			Max2024:      intOrNA(c.MaxAttendance2024),
			Average:      intOrNA(c.AvgAttendance),
			PreviousRoom: naIfNil(c.PreviousRoom),
			CurrentRoom:  "Not assigned",
			Change:       "N/A",
		}
		if c.AssignedRoom != nil {
			row.CurrentRoom = *c.AssignedRoom
		}
		if c.MaxAttendance2023 != nil && c.MaxAttendance2024 != nil {
			change := *c.MaxAttendance2024 - *c.MaxAttendance2023
			if change > 0 {
				row.Change = fmt.Sprintf("+%d", change)
			} else {
				row.Change = fmt.Sprintf("%d", change)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (p *Planner) assignedByBuilding(ct model.CourseType) []model.BuildingAssignments {
	type pair struct {
		room   *model.Room
		course *model.Course
	}
	grouped := map[string][]pair{}
	for _, c := range p.state.Courses {
		if c.Type != ct || c.AssignedRoom == nil {
			continue
		}
		room := p.findRoomByName(*c.AssignedRoom)
		if room == nil {
			continue
		}
		grouped[room.Building] = append(grouped[room.Building], pair{room, c})
	}

	buildings := make([]string, 0, len(grouped))
	for b := range grouped {
		buildings = append(buildings, b)
	}
	sort.Strings(buildings)

	out := make([]model.BuildingAssignments, 0, len(buildings))
	for _, b := range buildings {
		pairs := grouped[b]
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].room.Name < pairs[j].room.Name })

		section := model.BuildingAssignments{Building: b}
		for _, pr := range pairs {
			util := "∞%"
			if pr.room.Seats > 0 {
				util = fmt.Sprintf("%d%%", roundPct(pr.course.ExpectedAttendance, pr.room.Seats))
			}
			section.Assignments = append(section.Assignments, model.ReportAssignment{
				Room:        pr.room.Name,
				Course:      pr.course.Topic,
				Type:        string(pr.course.Type),
				Expected:    pr.course.ExpectedAttendance,
				Seats:       pr.room.Seats,
				Utilization: util,
			})
		}
		out = append(out, section)
	}
	return out
}

func (p *Planner) courseRows(ct model.CourseType) []model.ReportCourseRow {
	var rows []model.ReportCourseRow
	for _, c := range p.state.Courses {
		if c.Type != ct {
			continue
		}
		room := p.assignedRoomOf(c)
		info := Evaluate(c, room, p.state.Settings.AttendanceBase)
		row := model.ReportCourseRow{
			Topic:        c.Topic,
			Expected:     c.ExpectedAttendance,
			AssignedRoom: "Not assigned",
			RoomCapacity: "N/A",
			CapacityPct:  info.Display,
			Status:       StatusText(c, room),
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

func (p *Planner) capacityAnalysis() model.CapacityAnalysis {
	var analysis model.CapacityAnalysis
	for _, c := range p.state.Courses {
		if c.AssignedRoom == nil {
			continue
		}
		room := p.assignedRoomOf(c)
		if room == nil {
			continue
		}
		if overCapacity(c, room) {
			analysis.OverCapacityCount++
			analysis.OverCapacity = append(analysis.OverCapacity, model.OverRow{
				Course:   c.Topic,
				Expected: c.ExpectedAttendance,
				Room:     room.Name,
				Seats:    room.Seats,
				Overflow: c.ExpectedAttendance - room.Seats,
			})
			continue
		}
		if room.Seats > 0 {
			ratio := float64(c.ExpectedAttendance) / float64(room.Seats)
			if ratio >= 0.9 && ratio <= 1 {
				analysis.NearCapacityCount++
			}
		}
	}
	return analysis
}

func roundPct(attendance, seats int) int {
	return int(float64(attendance)/float64(seats)*100 + 0.5)
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func intOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func naIfNil(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
