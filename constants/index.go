package constants

const (
	INVALID_INPUT          = "Invalid input"
	ROOM_NOT_FOUND         = "Room not found"
	COURSE_NOT_FOUND       = "Course not found"
	ROOM_ADDED             = "New room added successfully"
	ROOM_DELETED           = "Room deleted successfully"
	COURSE_ADDED           = "New course added successfully"
	COURSE_DELETED         = "Course deleted successfully"
	ROOM_SWAP_DONE         = "Room swap completed successfully"
	SWAP_NEEDS_ASSIGNMENTS = "Both courses must have room assignments to swap"
	NO_PENDING_CONFLICT    = "No pending conflict"
	CONFLICT_CANCELLED     = "Assignment cancelled due to conflict"
	NO_DATA_TO_EXPORT      = "No data to export"
	INVALID_FILE_FORMAT    = "Invalid file format"
	IMPORT_FAILED          = "Error loading file"
	EXPORT_FAILED          = "Error exporting data"
	PERSISTENCE_FAILED     = "Error saving data"
	ALL_ROOMS_AVAILABLE    = "All rooms marked as available"
	ALL_ROOMS_UNAVAILABLE  = "All rooms marked as unavailable - assignments cleared"
)
