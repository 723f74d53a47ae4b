package auth

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Account is a login identity, either a row of admins or of employees.
type Account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   string
	Designation  string
	ProfileImage *string
	CreatedAt    time.Time
}

const (
	AdminDepartment  = "Management"
	AdminDesignation = "Administrator"

	DefaultDepartment  = "Unassigned"
	DefaultDesignation = "New Hire"
)
