package planner

import (
	"math"

	"classroom_manager/model"
)

// AttendanceForYear reads the sparse year map. The map is materialized by the
// migration pass at load time, so this is a pure lookup. A recorded zero
// counts as unset, matching the original tool's behavior.
func AttendanceForYear(c *model.Course, year string) *int {
	if c.AttendanceByYear == nil {
		return nil
	}
	v, found := c.AttendanceByYear[year]
	if !found || v == nil || *v == 0 {
		return nil
	}
	return v
}

// AverageAttendance averages the values recorded at the two selected
// comparison years, ignoring any other years in the map. Rounding is to the
// nearest integer with ties rounding up. Nil when neither year has a value.
func AverageAttendance(c *model.Course, year1, year2 string) *int {
	var values []int
	if v := AttendanceForYear(c, year1); v != nil {
		values = append(values, *v)
	}
	if v := AttendanceForYear(c, year2); v != nil {
		values = append(values, *v)
	}
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	avg := int(math.Floor(float64(sum)/float64(len(values)) + 0.5))
	return &avg
}

// EffectiveAttendance resolves the configured basis to the single number that
// drives all capacity math. The fixed-year bases read the legacy fields, not
// the sparse map; "highest" takes the max across both plus the average.
func EffectiveAttendance(c *model.Course, base string) int {
	switch base {
	case "2023":
		return intOrZero(c.MaxAttendance2023)
	case "average":
		return intOrZero(c.AvgAttendance)
	case "highest":
		highest := intOrZero(c.MaxAttendance2023)
		if v := intOrZero(c.MaxAttendance2024); v > highest {
			highest = v
		}
		if v := intOrZero(c.AvgAttendance); v > highest {
			highest = v
		}
		return highest
	default: // "2024" and anything unrecognized
		return intOrZero(c.MaxAttendance2024)
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
