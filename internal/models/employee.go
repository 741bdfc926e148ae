package models

// Role is the access level baked into the session token.
type Role string

const (
	RolePM       Role = "PM"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether r is one of the roles the backend issues.
func (r Role) Valid() bool {
	return r == RolePM || r == RoleEmployee
}

// EmployeeRole is the job position, meaningful only when Role is EMPLOYEE.
type EmployeeRole string

const (
	EmployeeRoleJuniorDeveloper EmployeeRole = "JUNIOR_DEVELOPER"
	EmployeeRoleMidDeveloper    EmployeeRole = "MID_DEVELOPER"
	EmployeeRoleSeniorDeveloper EmployeeRole = "SENIOR_DEVELOPER"
	EmployeeRoleDesigner        EmployeeRole = "DESIGNER"
	EmployeeRoleTester          EmployeeRole = "TESTER"
)

// Employee mirrors the backend's employee record. The password field is
// write-only: it is sent on register/create and never echoed back.
type Employee struct {
	ID           int64        `json:"id,omitempty"`
	Name         string       `json:"name"`
	Username     string       `json:"username"`
	Password     string       `json:"password,omitempty"`
	Role         Role         `json:"role"`
	RoleEmployee EmployeeRole `json:"roleEmployee,omitempty"`
}
