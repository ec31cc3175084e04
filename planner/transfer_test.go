package planner

import (
	"encoding/json"
	"strings"
	"testing"

	"classroom_manager/model"
)

func TestImportRejectsMalformedPayloads(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	p := testPlanner([]*model.Room{room}, nil)

	cases := []string{
		`not json`,
		`{"version":"1.0"}`,
		`{"rooms":[],"courses":null}`,
		`{"rooms":[null],"courses":[]}`,
	}
	for _, payload := range cases {
		if _, err := p.Import([]byte(payload)); err == nil {
			t.Errorf("Import(%q) accepted a malformed payload", payload)
		}
	}

	// The rejected imports must not have touched the live state.
	if len(p.state.Rooms) != 1 || p.state.Rooms[0].Name != "Room 101" {
		t.Fatal("failed import mutated the state")
	}
}

func TestImportReplacesStateAndSyncs(t *testing.T) {
	p := testPlanner([]*model.Room{testRoom("r1", "Old Room", 10, true)}, nil)

	payload := `{
		"version": "1.0",
		"rooms": [{"name": "Room 201", "seats": 80, "available": true}],
		"courses": [{"topic": "Gas Quality", "type": "Lecture", "assignedRoom": "Room 201", "maxAttendance2023": 58, "maxAttendance2024": 90}],
		"settings": {"attendanceBase": "average", "agmscYear": "2025"}
	}`
	file, err := p.Import([]byte(payload))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if file.Version != "1.0" {
		t.Fatalf("version = %q", file.Version)
	}

	if len(p.state.Rooms) != 1 || p.state.Rooms[0].Name != "Room 201" {
		t.Fatal("state not replaced")
	}
	room := p.state.Rooms[0]
	course := p.state.Courses[0]

	if room.ID == "" || course.ID == "" {
		t.Fatal("missing ids were not backfilled")
	}
	if room.AssignedTo == nil || *room.AssignedTo != "Gas Quality" {
		t.Fatalf("back reference not rebuilt: %v", room.AssignedTo)
	}
	if course.AvgAttendance == nil || *course.AvgAttendance != 74 {
		t.Fatalf("migration did not run on import: avg = %v", course.AvgAttendance)
	}
	if p.state.Settings.AttendanceBase != "average" {
		t.Fatalf("attendance base = %q", p.state.Settings.AttendanceBase)
	}
	if p.state.Settings.ConferenceYear != "2025" {
		t.Fatalf("conference year = %q", p.state.Settings.ConferenceYear)
	}
	// Unspecified settings keep their defaults.
	if p.state.Settings.SelectedYear1 != "2023" {
		t.Fatalf("year1 = %q", p.state.Settings.SelectedYear1)
	}
}

func TestBuildSaveFileRoundTrips(t *testing.T) {
	room := testRoom("r1", "Room 101", 50, true)
	course := testCourse("c1", "Gas Quality", 25)
	p := testPlanner([]*model.Room{room}, []*model.Course{course})
	p.Assign("c1", "Room 101")

	file := p.BuildSaveFile()
	if file.Version != saveFileVersion {
		t.Fatalf("version = %q", file.Version)
	}
	if file.Metadata.TotalRooms != 1 || file.Metadata.AssignedRooms != 1 {
		t.Fatalf("metadata = %+v", file.Metadata)
	}

	payload, err := json.Marshal(file)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	fresh := testPlanner(nil, nil)
	if _, err := fresh.Import(payload); err != nil {
		t.Fatalf("reimport: %v", err)
	}
	if len(fresh.state.Rooms) != 1 || len(fresh.state.Courses) != 1 {
		t.Fatal("round trip lost records")
	}
	if fresh.state.Rooms[0].AssignedTo == nil {
		t.Fatal("round trip lost the assignment")
	}
}

func TestExportRows(t *testing.T) {
	room := testRoom("r1", "Room 101", 100, true)
	assigned := testCourse("c1", "Gas Quality", 25)
	assigned.MaxAttendance2023 = intp(58)
	assigned.MaxAttendance2024 = intp(90)
	assigned.AvgAttendance = intp(74)
	assigned.PreviousRoom = strp("Room 99")
	unassigned := testCourse("c2", "Demo 1", 30)

	p := testPlanner([]*model.Room{room}, []*model.Course{assigned, unassigned})
	p.Assign("c1", "Room 101")

	rows := p.ExportRows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}

	first := rows[0]
	if first.Topic != "Gas Quality" || first.Max2023 != "58" || first.Average != "74" {
		t.Fatalf("row = %+v", first)
	}
	if first.AssignedRoom != "Room 101" || first.RoomCapacity != "100" {
		t.Fatalf("room columns = %q / %q", first.AssignedRoom, first.RoomCapacity)
	}
	if first.PreviousRoom != "Room 99" {
		t.Fatalf("previous room = %q", first.PreviousRoom)
	}
	if !strings.HasSuffix(first.CapacityPct, "%") {
		t.Fatalf("capacity pct = %q", first.CapacityPct)
	}

	second := rows[1]
	if second.AssignedRoom != "Not assigned" || second.RoomCapacity != "N/A" {
		t.Fatalf("unassigned row = %+v", second)
	}
	if second.Max2023 != "" {
		t.Fatalf("missing attendance rendered as %q, want empty", second.Max2023)
	}
}
