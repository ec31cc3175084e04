package model

// SaveFile is the versioned import/export document. Rooms and Courses are
// required on import; Settings and Metadata are optional.
type SaveFile struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	Rooms     []*Room       `json:"rooms"`
	Courses   []*Course     `json:"courses"`
	Settings  *SaveSettings `json:"settings,omitempty"`
	Metadata  *SaveMetadata `json:"metadata,omitempty"`
}

type SaveSettings struct {
	AttendanceBase    string `json:"attendanceBase,omitempty"`
	SelectedYear1     string `json:"selectedYear1,omitempty"`
	SelectedYear2     string `json:"selectedYear2,omitempty"`
	AGMSCYear         string `json:"agmscYear,omitempty"`
	RoomSortColumn    string `json:"roomSortColumn,omitempty"`
	RoomSortDirection string `json:"roomSortDirection,omitempty"`
}

type SaveMetadata struct {
	TotalRooms    int    `json:"totalRooms"`
	TotalCourses  int    `json:"totalCourses"`
	AssignedRooms int    `json:"assignedRooms"`
	AGMSCYear     string `json:"agmscYear,omitempty"`
}

// ExportRow is one line of the flat tabular export, one per course in
// course-list order. The csv tags drive gocsv, the same struct feeds the
// spreadsheet export.
type ExportRow struct {
	Topic        string `csv:"Topic" json:"topic"`
	Type         string `csv:"Type" json:"type"`
	Max2023      string `csv:"2023 Max Attendance" json:"max2023"`
	Max2024      string `csv:"2024 Max Attendance" json:"max2024"`
	Average      string `csv:"Average Attendance" json:"average"`
	PreviousRoom string `csv:"Previous Room" json:"previousRoom"`
	AssignedRoom string `csv:"Assigned Room" json:"assignedRoom"`
	RoomCapacity string `csv:"Room Capacity" json:"roomCapacity"`
	CapacityPct  string `csv:"Capacity %" json:"capacityPct"`
	Status       string `csv:"Status" json:"status"`
}
