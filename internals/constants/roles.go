package constants

// Account roles. Role is assigned at registration and never changes.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var ValidRoles = []string{RoleAdmin, RoleTeacher, RoleStudent}

// Forbidden messages per route group.
const (
	ErrOnlyStaffCanAccess      = "Only admin or teacher accounts may access this resource"
	ErrOnlyAdminsCanAccess     = "Only admin accounts may access this resource"
	ErrOnlyInstructorCanAccess = "Only instructor accounts may manage courses"
)

func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
