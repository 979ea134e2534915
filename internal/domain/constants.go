package domain

// Business validation constants
const (
	MinBookerNameLength   = 2
	MaxBookerNameLength   = 100
	MinMeetingTitleLength = 3
	MaxMeetingTitleLength = 200
	MinDepartmentLength   = 2
	MaxDepartmentLength   = 100
	MaxBreakDetailsLength = 500
	MaxBreakOrganizerLen  = 50

	// A single booking request may cover at most this many calendar dates
	MaxBookingDates = 30

	MinRoomNameLength = 2
	MaxRoomNameLength = 100
	MinRoomCapacity   = 1
	MaxRoomCapacity   = 1000
)

// Date format constant
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Availability range limit: the calendar UI requests at most two months ahead
const MaxAvailabilityRangeDays = 62
