package model

const (
	DefaultAttendanceBase = "2024"
	DefaultYear1          = "2023"
	DefaultYear2          = "2024"
	DefaultSortDirection  = "asc"
)

// Settings are the process-wide display preferences. They affect derived
// values only, never the assignment relation itself.
type Settings struct {
	AttendanceBase    string `json:"attendanceBase"`
	SelectedYear1     string `json:"selectedYear1"`
	SelectedYear2     string `json:"selectedYear2"`
	ConferenceYear    string `json:"agmscYear"`
	RoomSortColumn    string `json:"roomSortColumn"`
	RoomSortDirection string `json:"roomSortDirection"`
}

func DefaultSettings() Settings {
	return Settings{
		AttendanceBase:    DefaultAttendanceBase,
		SelectedYear1:     DefaultYear1,
		SelectedYear2:     DefaultYear2,
		RoomSortDirection: DefaultSortDirection,
	}
}

type AttendanceBaseInput struct {
	Base string `json:"base" validate:"required,oneof=2023 2024 average highest"`
}

type ComparisonYearsInput struct {
	Year1 string `json:"year1" validate:"required,len=4,numeric"`
	Year2 string `json:"year2" validate:"required,len=4,numeric"`
}

type ConferenceYearInput struct {
	Year string `json:"year" validate:"required,len=4,numeric"`
}
