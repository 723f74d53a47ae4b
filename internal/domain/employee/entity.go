package employee

import "time"

type Employee struct {
	ID           int64
	Name         string
	Email        string
	DepartmentID *int64
	Department   string
	Designation  string
	ProfileImage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
