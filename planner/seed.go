package planner

import (
	"github.com/google/uuid"

	"classroom_manager/model"
)

func seedRoom(name, building string, seats int, seatType string) *model.Room {
	return &model.Room{
		ID:        uuid.NewString(),
		Name:      name,
		Building:  building,
		Seats:     seats,
		SeatType:  seatType,
		Available: true,
		RMUStatus: model.RMUApproved,
	}
}

func seedCourse(topic string, ct model.CourseType, expected int, room string, max2023, max2024, avg int) *model.Course {
	return &model.Course{
		ID:                 uuid.NewString(),
		Topic:              topic,
		Type:               ct,
		ExpectedAttendance: expected,
		AssignedRoom:       &room,
		MaxAttendance2023:  &max2023,
		MaxAttendance2024:  &max2024,
		AvgAttendance:      &avg,
		PreviousRoom:       &room,
	}
}

// DefaultRooms is the stock conference room inventory used when the store is
// empty on first boot.
func DefaultRooms() []*model.Room {
	hall1 := seedRoom("Hall 1", "UPMC", 115, "Chairs")
	hall1.NormalUsage = model.UsageLecture
	hall2 := seedRoom("Hall 2", "UPMC", 60, "Chairs")
	hall2.NormalUsage = model.UsageLecture

	return []*model.Room{
		hall1,
		hall2,
		seedRoom("Hall 5", "UPMC", 200, "Chairs"),
		seedRoom("Hall 6", "UPMC", 50, "Chairs"),
		seedRoom("11", "Scaife", 47, "Tablet desks"),
		seedRoom("141", "John Jay", 40, "Tables"),
		seedRoom("142", "John Jay", 40, "Tables"),
		seedRoom("143", "John Jay", 40, "Tables"),
		seedRoom("263", "John Jay", 40, "Tables"),
		seedRoom("264", "John Jay", 40, "Tables"),
		seedRoom("PH-304", "Patrick Henry", 32, "Tables"),
		seedRoom("PH-306", "Patrick Henry", 32, "Tables"),
		seedRoom("Hopwood Hall", "Patrick Henry", 138, "Tablet Desks"),
		seedRoom("Auditorium", "School of Business", 200, "Chairs"),
		seedRoom("102", "Hale", 30, "Tables"),
		seedRoom("104", "Hale", 40, "Tables"),
		seedRoom("105", "Hale", 40, "Tables"),
		seedRoom("106", "Hale", 30, "Tables"),
		seedRoom("201", "Hale", 36, "Tablet desks"),
		seedRoom("202", "Hale", 30, "PC Lab Tables"),
		seedRoom("203", "Hale", 58, "Tables"),
		seedRoom("204", "Hale", 60, "Tables"),
		seedRoom("209", "Hale", 52, "Tables"),
		seedRoom("301", "Hale", 63, "Tables"),
		seedRoom("302", "Hale", 42, "Tables"),
		seedRoom("303", "Hale", 40, "Tables"),
		seedRoom("304", "Hale", 32, "PC Lab Tables"),
		seedRoom("305", "Hale", 0, "Tables"),
		seedRoom("306", "Hale", 32, "PC Lab Tables"),
		seedRoom("307", "Hale", 49, "Tables"),
		seedRoom("309", "Hale", 49, "Tables"),
		seedRoom("310", "Hale", 49, "Tables"),
		seedRoom("110", "Wheatley", 39, "Tablet desks"),
		seedRoom("111", "Wheatley", 30, "Tables"),
		seedRoom("112", "Wheatley", 32, "Tables"),
		seedRoom("113", "Wheatley", 30, "Tables"),
		seedRoom("114", "Wheatley", 28, "Tables"),
		seedRoom("X", "UPMC", 30, "Table Set up"),
		seedRoom("Lower Parking", "UPMC", 0, "-"),
		seedRoom("Exc Boardroom 1", "UPMC", 0, "-"),
	}
}

// DefaultCourses is the stock program with its historical attendance.
func DefaultCourses() []*model.Course {
	return []*model.Course{
		seedCourse("Fundamentals of Measurement & Regulation", model.TypeLecture, 90, "Hall 1", 62, 90, 76),
		seedCourse("Basics of Measurement & Pressure Control", model.TypeLecture, 90, "Hall 5", 58, 90, 74),
		seedCourse("Advanced Metering-Low Volume", model.TypeLecture, 53, "11", 41, 53, 47),
		seedCourse("Advanced Metering-High Volume", model.TypeLecture, 40, "142", 32, 40, 36),
		seedCourse("Pressure Control", model.TypeLecture, 89, "Hall 2", 89, 89, 89),
		seedCourse("Instrumentation & Automation", model.TypeLecture, 31, "263", 33, 31, 32),
		seedCourse("General Topics", model.TypeLecture, 53, "264", 49, 53, 51),
		seedCourse("Production & Storage", model.TypeLecture, 36, "PH-304", 40, 36, 38),
		seedCourse("Gas Quality", model.TypeLecture, 35, "PH-306", 31, 35, 33),
		seedCourse("Communications & SCADA", model.TypeLecture, 42, "Hopwood Hall", 32, 42, 37),
		seedCourse("Next-Generation Gas Sources", model.TypeLecture, 200, "Auditorium", 200, 200, 200),
		seedCourse("Odorization", model.TypeLecture, 37, "Hall 6", 37, 37, 37),
		seedCourse("Current Industry Topics", model.TypeLecture, 42, "143", 38, 42, 40),
		seedCourse("NGL/Wet Gas", model.TypeLecture, 23, "141", 23, 23, 23),

		seedCourse("Lab 1", model.TypeHandsOn, 27, "202", 30, 27, 30),
		seedCourse("Lab 2", model.TypeHandsOn, 21, "306", 45, 21, 45),
		seedCourse("Lab 3", model.TypeHandsOn, 32, "304", 20, 32, 20),
		seedCourse("Demo 1", model.TypeHandsOn, 27, "110", 27, 27, 27),
		seedCourse("Demo 2", model.TypeHandsOn, 20, "201", 29, 20, 29),
		seedCourse("Demo 3", model.TypeHandsOn, 36, "105", 27, 36, 27),
		seedCourse("Demo 4", model.TypeHandsOn, 26, "112", 26, 26, 26),
		seedCourse("Demo 5", model.TypeHandsOn, 15, "114", 15, 15, 15),
		seedCourse("Demo 6", model.TypeHandsOn, 20, "X", 24, 20, 24),
		seedCourse("Hands 1", model.TypeHandsOn, 52, "301", 55, 52, 55),
		seedCourse("Hands 2", model.TypeHandsOn, 27, "310", 51, 27, 51),
		seedCourse("Hands 3", model.TypeHandsOn, 39, "209", 35, 39, 35),
		seedCourse("Hands 4", model.TypeHandsOn, 29, "113", 29, 29, 29),
		seedCourse("Hands 5", model.TypeHandsOn, 42, "309", 46, 42, 46),
		seedCourse("Hands 6", model.TypeHandsOn, 32, "303", 27, 32, 27),
		seedCourse("Hands 7", model.TypeHandsOn, 8, "106", 14, 8, 14),
		seedCourse("Hands 8", model.TypeHandsOn, 40, "307", 51, 40, 51),
		seedCourse("Hands 9", model.TypeHandsOn, 19, "111", 19, 19, 19),
		seedCourse("Hands 10", model.TypeHandsOn, 34, "104", 30, 34, 30),
		seedCourse("Hands 11", model.TypeHandsOn, 56, "203", 60, 56, 60),
		seedCourse("Hands 12", model.TypeHandsOn, 24, "204", 24, 24, 24),
		seedCourse("Hands 13", model.TypeHandsOn, 40, "302", 52, 40, 52),
		seedCourse("Hands 14", model.TypeHandsOn, 37, "102", 23, 37, 23),
		seedCourse("Outdoor Exhibit", model.TypeHandsOn, 30, "Lower Parking", 68, 30, 68),
		seedCourse("Instructor Lounge (Hale)", model.TypeHandsOn, 34, "305", 34, 34, 34),
		seedCourse("Instructor Lounge (UPMC)", model.TypeHandsOn, 0, "Exc Boardroom 1", 0, 0, 0),
	}
}
