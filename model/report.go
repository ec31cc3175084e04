package model

// Report is the JSON form of the printable assignment report. The view layer
// turns it into HTML/print output; the structure mirrors the report sections
// one to one.
type Report struct {
	Title            string                `json:"title"`
	GeneratedOn      string                `json:"generatedOn"`
	ConferenceYear   string                `json:"conferenceYear"`
	Summary          ReportSummary         `json:"summary"`
	RoomsByBuilding  []BuildingRooms       `json:"roomsByBuilding"`
	HistoricalData   []HistoricalRow       `json:"historicalData"`
	AssignedLecture  []BuildingAssignments `json:"assignedLecture"`
	AssignedHandsOn  []BuildingAssignments `json:"assignedHandsOn"`
	LectureCourses   []ReportCourseRow     `json:"lectureCourses"`
	HandsOnCourses   []ReportCourseRow     `json:"handsOnCourses"`
	CapacityAnalysis CapacityAnalysis      `json:"capacityAnalysis"`
}

type ReportSummary struct {
	TotalRooms          int `json:"totalRooms"`
	AssignedRooms       int `json:"assignedRooms"`
	TotalCourses        int `json:"totalCourses"`
	LectureCount        int `json:"lectureCount"`
	HandsOnCount        int `json:"handsOnCount"`
	CoursesWithoutRooms int `json:"coursesWithoutRooms"`
	CapacityIssues      int `json:"capacityIssues"`
}

type BuildingRooms struct {
	Building string       `json:"building"`
	Rooms    []ReportRoom `json:"rooms"`
}

type ReportRoom struct {
	Name       string `json:"name"`
	Seats      int    `json:"seats"`
	SeatType   string `json:"seatType"`
	Status     string `json:"status"`
	AssignedTo string `json:"assignedTo"`
	CourseType string `json:"courseType"`
}

type HistoricalRow struct {
	Topic        string `json:"topic"`
	Type         string `json:"type"`
	Max2023      string `json:"max2023"`
	Max2024      string `json:"max2024"`
	Average      string `json:"average"`
	PreviousRoom string `json:"previousRoom"`
	CurrentRoom  string `json:"currentRoom"`
	Change       string `json:"change"`
}

type BuildingAssignments struct {
	Building    string             `json:"building"`
	Assignments []ReportAssignment `json:"assignments"`
}

type ReportAssignment struct {
	Room        string `json:"room"`
	Course      string `json:"course"`
	Type        string `json:"type"`
	Expected    int    `json:"expected"`
	Seats       int    `json:"seats"`
	Utilization string `json:"utilization"`
}

type ReportCourseRow struct {
	Topic        string `json:"topic"`
	Expected     int    `json:"expected"`
	AssignedRoom string `json:"assignedRoom"`
	RoomCapacity string `json:"roomCapacity"`
	CapacityPct  string `json:"capacityPct"`
	Status       string `json:"status"`
}

type CapacityAnalysis struct {
	OverCapacityCount int       `json:"overCapacityCount"`
	NearCapacityCount int       `json:"nearCapacityCount"`
	OverCapacity      []OverRow `json:"overCapacity"`
}

type OverRow struct {
	Course   string `json:"course"`
	Expected int    `json:"expected"`
	Room     string `json:"room"`
	Seats    int    `json:"seats"`
	Overflow int    `json:"overflow"`
}
