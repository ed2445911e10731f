package constants

// User roles
const (
	RoleOwner       = "owner"
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleCoach       = "coach"
	RolePlayer      = "player"
)

// Session lifecycle statuses
const (
	SessionUpcoming = "Upcoming"
	SessionOngoing  = "On-going"
	SessionFinished = "Finished"
)

// Attendance statuses
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// Performance history entry types
const (
	HistoryMatch    = "match"
	HistoryTraining = "training"
)

// AdminRoles may manage academy-wide resources.
var AdminRoles = []string{RoleOwner, RoleAdmin, RoleCoordinator}

// StaffRoles may mark attendance and record metrics.
var StaffRoles = []string{RoleOwner, RoleAdmin, RoleCoordinator, RoleCoach}

func HasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleCoordinator, RoleCoach, RolePlayer:
		return true
	}
	return false
}
